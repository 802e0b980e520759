package models

// ReservationStatus represents the state of a legacy reservation record.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "en_attente"
	ReservationStatusConfirmed ReservationStatus = "confirmee"
	ReservationStatusCancelled ReservationStatus = "annulee"
	ReservationStatusCompleted ReservationStatus = "terminee"
)

// Reservation is the legacy passenger-to-listing binding. The listing's own
// seat counters and passenger list are authoritative; these records are kept
// in parallel for the reservations collection.
type Reservation struct {
	ID             string            `json:"id_reservation"`
	ListingID      string            `json:"id_annonce"`
	DriverEmail    string            `json:"id_automobiliste"`
	PassengerEmail string            `json:"id_passager"`
	DepartureTime  string            `json:"heure_depart"`
	Status         ReservationStatus `json:"statut"`
	PointsAwarded  int               `json:"points_attribues"`
}
