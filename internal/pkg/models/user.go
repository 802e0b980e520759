package models

// UserRole identifies which side of a ride a user is on. A user may switch
// roles at any time; listings published under the old role are not revisited.
type UserRole string

const (
	RoleDriver    UserRole = "automobiliste"
	RolePassenger UserRole = "passager"
)

// User represents a registered commuter. The email address is the identity
// key; it is unique and never changes.
type User struct {
	Email        string   `json:"email"`
	LastName     string   `json:"nom"`
	FirstName    string   `json:"prenom"`
	Phone        string   `json:"telephone"`
	University   string   `json:"universite"`
	Role         UserRole `json:"role"`
	VehicleKind  string   `json:"engin,omitempty"`
	SeatCapacity *int     `json:"places_disponibles,omitempty"`
	Points       int      `json:"points"`
	TripHistory  []string `json:"historique_trajets"`
}

// IsDriver reports whether the user currently has the driver role.
func (u *User) IsDriver() bool {
	return u.Role == RoleDriver
}
