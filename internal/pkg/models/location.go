package models

// Location represents a geographical point with latitude and longitude in degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// University is a named campus with its registered coordinates.
type University struct {
	Name      string  `json:"nom"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location returns the campus coordinates as a Location.
func (u University) Location() Location {
	return Location{Latitude: u.Latitude, Longitude: u.Longitude}
}
