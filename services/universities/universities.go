package universities

import (
	"context"
	"errors"

	"github.com/sydoni/sydoni-drive/internal/pkg/models"
)

// ErrNotFound is returned when no university matches the requested name.
var ErrNotFound = errors.New("university not found")

// Directory exposes the university name-to-coordinates lookup.
type Directory interface {
	// EnsureSeeded populates the directory with the default campuses when the
	// backing collection is empty. Idempotent; called once at startup.
	EnsureSeeded(ctx context.Context) error
	// CoordinatesOf looks up a campus by name, case-insensitively.
	CoordinatesOf(ctx context.Context, name string) (models.Location, error)
	List(ctx context.Context) ([]models.University, error)
	// Replace swaps the whole directory; the only write beyond seeding.
	Replace(ctx context.Context, universities []models.University) error
}
