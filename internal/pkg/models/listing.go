package models

import (
	"time"
)

// ListingStatus represents the lifecycle state of a ride listing.
type ListingStatus string

const (
	ListingStatusPending   ListingStatus = "en_attente"
	ListingStatusOngoing   ListingStatus = "en_cours"
	ListingStatusCompleted ListingStatus = "termine"
	ListingStatusCancelled ListingStatus = "annule"
)

// departureLayout is the wall-clock format used for departure times. Listings
// carry no date; a departure time is always interpreted against "today".
const departureLayout = "15:04"

// Listing represents a ride offer published by a driver. It is the source of
// truth for seat inventory and the reserved passenger list; history entries
// and legacy reservation records are projections of it.
type Listing struct {
	ID               string        `json:"id_annonce"`
	DriverEmail      string        `json:"id_automobiliste"`
	Destination      string        `json:"universite_destination"`
	DepartureTime    string        `json:"heure_depart"`
	SeatsOffered     int           `json:"places_offertes"`
	SeatsAvailable   int           `json:"places_disponibles"`
	VehicleKind      string        `json:"engin"`
	Status           ListingStatus `json:"statut"`
	Passengers       []string      `json:"passagers_reserves"`
	Departure        Location      `json:"position_depart"`
	DepartureGeohash string        `json:"geohash_depart,omitempty"`
	PublishedAt      time.Time     `json:"date_publication"`
	HasReservations  bool          `json:"has_reservations"`
}

// HasPassenger reports whether the passenger already reserved a seat.
func (l *Listing) HasPassenger(email string) bool {
	for _, p := range l.Passengers {
		if p == email {
			return true
		}
	}
	return false
}

// DepartureOn resolves the HH:MM departure time against the date of day.
// It fails when the stored time string is malformed.
func (l *Listing) DepartureOn(day time.Time) (time.Time, error) {
	t, err := time.Parse(departureLayout, l.DepartureTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
