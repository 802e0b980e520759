package models

// HistoryEntry is the per-user, per-listing denormalized view used for display
// and rating gating. Entries for the driver and passenger sides of the same
// listing are independent copies kept consistent by the ride coordinator at
// each transition; they are not recomputed from the listing.
type HistoryEntry struct {
	ListingID     string        `json:"id"`
	Role          UserRole      `json:"role"`
	Destination   string        `json:"universite"`
	DepartureTime string        `json:"heure_depart"`
	Status        ListingStatus `json:"etat"`
	Points        int           `json:"points"`

	// Rating is a display value only: the most recent score a passenger gave,
	// not a running average. Nil means never rated.
	Rating      *int `json:"notes_moyenne,omitempty"`
	RatingGiven bool `json:"note_donnee,omitempty"`

	// Passenger-side fields.
	DriverEmail       string    `json:"automobiliste_email,omitempty"`
	PassengerPosition *Location `json:"position_passager,omitempty"`

	// Driver-side snapshot of the listing at the last write.
	SeatsOffered    int       `json:"places_offertes,omitempty"`
	SeatsAvailable  int       `json:"places_disponibles,omitempty"`
	Passengers      []string  `json:"passagers_reserves,omitempty"`
	HasReservations bool      `json:"has_reservations,omitempty"`
	Departure       *Location `json:"position_depart,omitempty"`
}

// History is the persisted shape of the history collection: user email to
// listing id to entry.
type History map[string]map[string]HistoryEntry
