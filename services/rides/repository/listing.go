package repository

import (
	"context"

	"github.com/sydoni/sydoni-drive/internal/pkg/models"
	"github.com/sydoni/sydoni-drive/internal/pkg/storage"
	"github.com/sydoni/sydoni-drive/services/rides"
)

// ListingRepo implements rides.ListingRepo over the flat-file store. The
// annonces collection is loaded and saved in full on every operation.
type ListingRepo struct {
	store *storage.Store
}

// NewListingRepo creates a new listing repository
func NewListingRepo(store *storage.Store) *ListingRepo {
	return &ListingRepo{store: store}
}

func (r *ListingRepo) loadAll() ([]*models.Listing, error) {
	var all []*models.Listing
	if err := r.store.Load(storage.CollectionListings, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *ListingRepo) saveAll(all []*models.Listing) error {
	return r.store.Save(storage.CollectionListings, all)
}

// CreateListing appends a new listing to the collection
func (r *ListingRepo) CreateListing(ctx context.Context, listing *models.Listing) error {
	all, err := r.loadAll()
	if err != nil {
		return err
	}
	all = append(all, listing)
	return r.saveAll(all)
}

// GetListing retrieves a listing by id
func (r *ListingRepo) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	all, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for _, l := range all {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, rides.ErrListingNotFound
}

// UpdateListing replaces the stored record matching the listing's id
func (r *ListingRepo) UpdateListing(ctx context.Context, listing *models.Listing) error {
	all, err := r.loadAll()
	if err != nil {
		return err
	}
	for i, l := range all {
		if l.ID == listing.ID {
			all[i] = listing
			return r.saveAll(all)
		}
	}
	return rides.ErrListingNotFound
}

// DeleteListing removes a listing by id
func (r *ListingRepo) DeleteListing(ctx context.Context, id string) error {
	all, err := r.loadAll()
	if err != nil {
		return err
	}
	kept := all[:0]
	found := false
	for _, l := range all {
		if l.ID == id {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return rides.ErrListingNotFound
	}
	return r.saveAll(kept)
}

// ListListings returns every listing in publication order
func (r *ListingRepo) ListListings(ctx context.Context) ([]*models.Listing, error) {
	return r.loadAll()
}
