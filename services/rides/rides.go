package rides

import (
	"context"
	"errors"

	"github.com/sydoni/sydoni-drive/internal/pkg/models"
)

// Domain errors for ride operations. Handlers map these onto the
// human-readable failure messages shown to the user.
var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrNotDriver          = errors.New("only a driver can publish a listing")
	ErrNoSeats            = errors.New("no seats available on this listing")
	ErrAlreadyReserved    = errors.New("you have already reserved this trip")
	ErrAlreadyCompleted   = errors.New("this trip is already completed")
	ErrNotCompleted       = errors.New("this trip is not completed yet and cannot be rated")
	ErrNotParticipant     = errors.New("you can only rate trips you reserved")
	ErrAlreadyRated       = errors.New("you have already rated this trip")
	ErrInvalidScore       = errors.New("score must be between 0 and 5")
	ErrUnknownDestination = errors.New("unknown destination university")
	ErrAlreadyCancelled   = errors.New("this trip is already cancelled")
)

// PublishRequest carries the inputs for publishing a new listing.
type PublishRequest struct {
	DriverEmail   string
	Destination   string
	DepartureTime string // "HH:MM", interpreted as today
	Seats         int
	Departure     models.Location
}

// CompletionResult reports the outcome of completing a trip.
type CompletionResult struct {
	PointsAwarded  int      `json:"points_awarded"`
	AwardBreakdown []string `json:"award_breakdown,omitempty"`
}

// RideUC defines the interface for the ride coordinator: the state machine
// governing a listing from publication through reservation, completion and
// rating, plus the passenger-facing matching rules.
type RideUC interface {
	Publish(ctx context.Context, req PublishRequest) (*models.Listing, error)
	Reserve(ctx context.Context, listingID, passengerEmail string, position models.Location) error
	Complete(ctx context.Context, listingID string) (*CompletionResult, error)
	Rate(ctx context.Context, listingID, passengerEmail string, score int) (int, error)
	Cancel(ctx context.Context, listingID string) error
	Remove(ctx context.Context, listingID string) error

	AvailableListings(ctx context.Context) ([]*models.Listing, error)
	ListingsFor(ctx context.Context, destination string, passenger models.Location) ([]*models.Listing, error)
	ListNearby(ctx context.Context, position models.Location) ([]*models.Listing, error)
	HistoryFor(ctx context.Context, email string) ([]models.HistoryEntry, error)
}

// ListingRepo defines the interface for listing data access operations
type ListingRepo interface {
	CreateListing(ctx context.Context, listing *models.Listing) error
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	UpdateListing(ctx context.Context, listing *models.Listing) error
	DeleteListing(ctx context.Context, id string) error
	ListListings(ctx context.Context) ([]*models.Listing, error)
}

// HistoryRepo defines the interface for the per-user history ledger
type HistoryRepo interface {
	// GetEntry returns the entry for (email, listingID), or nil when absent.
	GetEntry(ctx context.Context, email, listingID string) (*models.HistoryEntry, error)
	PutEntry(ctx context.Context, email string, entry models.HistoryEntry) error
	EntriesFor(ctx context.Context, email string) ([]models.HistoryEntry, error)
}

// ReservationRepo defines the interface for the legacy reservation records
type ReservationRepo interface {
	CreateReservation(ctx context.Context, reservation *models.Reservation) error
	ListByListing(ctx context.Context, listingID string) ([]*models.Reservation, error)
	ListByUser(ctx context.Context, email string, asDriver bool) ([]*models.Reservation, error)
	UpdateReservation(ctx context.Context, reservation *models.Reservation) error
}
