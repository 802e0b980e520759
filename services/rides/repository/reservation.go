package repository

import (
	"context"
	"errors"

	"github.com/sydoni/sydoni-drive/internal/pkg/models"
	"github.com/sydoni/sydoni-drive/internal/pkg/storage"
)

// ErrReservationNotFound is returned when an update targets an unknown record.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepo implements rides.ReservationRepo over the flat-file store.
// These records run in parallel to the listings' own passenger lists, which
// remain authoritative for availability.
type ReservationRepo struct {
	store *storage.Store
}

// NewReservationRepo creates a new reservation repository
func NewReservationRepo(store *storage.Store) *ReservationRepo {
	return &ReservationRepo{store: store}
}

func (r *ReservationRepo) loadAll() ([]*models.Reservation, error) {
	var all []*models.Reservation
	if err := r.store.Load(storage.CollectionReservations, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// CreateReservation appends a new reservation record
func (r *ReservationRepo) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	all, err := r.loadAll()
	if err != nil {
		return err
	}
	all = append(all, reservation)
	return r.store.Save(storage.CollectionReservations, all)
}

// ListByListing returns every reservation bound to a listing
func (r *ReservationRepo) ListByListing(ctx context.Context, listingID string) ([]*models.Reservation, error) {
	all, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	var matched []*models.Reservation
	for _, res := range all {
		if res.ListingID == listingID {
			matched = append(matched, res)
		}
	}
	return matched, nil
}

// ListByUser returns the reservations a user participates in, on the driver
// or passenger side.
func (r *ReservationRepo) ListByUser(ctx context.Context, email string, asDriver bool) ([]*models.Reservation, error) {
	all, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	var matched []*models.Reservation
	for _, res := range all {
		if asDriver && res.DriverEmail == email {
			matched = append(matched, res)
		}
		if !asDriver && res.PassengerEmail == email {
			matched = append(matched, res)
		}
	}
	return matched, nil
}

// UpdateReservation replaces the stored record matching the reservation's id
func (r *ReservationRepo) UpdateReservation(ctx context.Context, reservation *models.Reservation) error {
	all, err := r.loadAll()
	if err != nil {
		return err
	}
	for i, res := range all {
		if res.ID == reservation.ID {
			all[i] = reservation
			return r.store.Save(storage.CollectionReservations, all)
		}
	}
	return ErrReservationNotFound
}
