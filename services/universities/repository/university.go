package repository

import (
	"context"
	"strings"

	"github.com/sydoni/sydoni-drive/internal/pkg/logger"
	"github.com/sydoni/sydoni-drive/internal/pkg/models"
	"github.com/sydoni/sydoni-drive/internal/pkg/storage"
	"github.com/sydoni/sydoni-drive/services/universities"
)

// defaultUniversities seeds the directory on first run.
var defaultUniversities = []models.University{
	{
		Name:      "Burkina Institut of Technology(BIT)",
		Latitude:  12.2419,
		Longitude: -2.4083,
	},
	{
		Name:      "Université Norbert Zongo (UNZ)",
		Latitude:  12.2400,
		Longitude: -2.3990,
	},
	{
		Name:      "Institut Supérieur de Management de Koudougou (ISMK)",
		Latitude:  12.2526,
		Longitude: -2.3627,
	},
}

// UniversityRepo implements universities.Directory over the flat-file store.
type UniversityRepo struct {
	store *storage.Store
}

// NewUniversityRepo creates a new university directory repository
func NewUniversityRepo(store *storage.Store) *UniversityRepo {
	return &UniversityRepo{store: store}
}

func (r *UniversityRepo) loadAll() ([]models.University, error) {
	var all []models.University
	if err := r.store.Load(storage.CollectionUniversities, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// EnsureSeeded writes the default campuses when the collection is empty.
func (r *UniversityRepo) EnsureSeeded(ctx context.Context) error {
	all, err := r.loadAll()
	if err != nil {
		return err
	}
	if len(all) > 0 {
		return nil
	}

	logger.Info("Seeding university directory",
		logger.Int("universities", len(defaultUniversities)))
	return r.store.Save(storage.CollectionUniversities, defaultUniversities)
}

// CoordinatesOf looks up a campus by name, case-insensitively.
func (r *UniversityRepo) CoordinatesOf(ctx context.Context, name string) (models.Location, error) {
	all, err := r.loadAll()
	if err != nil {
		return models.Location{}, err
	}
	for _, u := range all {
		if strings.EqualFold(u.Name, name) {
			return u.Location(), nil
		}
	}
	return models.Location{}, universities.ErrNotFound
}

// List returns every registered university
func (r *UniversityRepo) List(ctx context.Context) ([]models.University, error) {
	return r.loadAll()
}

// Replace swaps the whole directory
func (r *UniversityRepo) Replace(ctx context.Context, all []models.University) error {
	return r.store.Save(storage.CollectionUniversities, all)
}
