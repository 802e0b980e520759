package repository

import (
	"context"
	"sort"

	"github.com/sydoni/sydoni-drive/internal/pkg/models"
	"github.com/sydoni/sydoni-drive/internal/pkg/storage"
)

// HistoryRepo implements rides.HistoryRepo over the flat-file store. The
// collection is a mapping from user email to listing id to entry; one entry
// per (user, listing) pair.
type HistoryRepo struct {
	store *storage.Store
}

// NewHistoryRepo creates a new history repository
func NewHistoryRepo(store *storage.Store) *HistoryRepo {
	return &HistoryRepo{store: store}
}

func (r *HistoryRepo) loadAll() (models.History, error) {
	all := models.History{}
	if err := r.store.Load(storage.CollectionHistory, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// GetEntry returns the entry for (email, listingID), or nil when absent.
func (r *HistoryRepo) GetEntry(ctx context.Context, email, listingID string) (*models.HistoryEntry, error) {
	all, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	if entries, ok := all[email]; ok {
		if entry, ok := entries[listingID]; ok {
			return &entry, nil
		}
	}
	return nil, nil
}

// PutEntry inserts or replaces the entry for (email, entry.ListingID).
func (r *HistoryRepo) PutEntry(ctx context.Context, email string, entry models.HistoryEntry) error {
	all, err := r.loadAll()
	if err != nil {
		return err
	}
	if all[email] == nil {
		all[email] = map[string]models.HistoryEntry{}
	}
	all[email][entry.ListingID] = entry
	return r.store.Save(storage.CollectionHistory, all)
}

// EntriesFor returns every history entry for a user, ordered by listing id
// for deterministic display.
func (r *HistoryRepo) EntriesFor(ctx context.Context, email string) ([]models.HistoryEntry, error) {
	all, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	entries := make([]models.HistoryEntry, 0, len(all[email]))
	for _, entry := range all[email] {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ListingID < entries[j].ListingID
	})
	return entries, nil
}
