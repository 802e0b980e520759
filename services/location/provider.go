// Package location provides the injected geolocation capabilities. Real
// geocoding is out of scope; the static provider stands in for the device
// location service and always reports the configured fallback coordinate.
package location

import (
	"errors"

	"github.com/sydoni/sydoni-drive/internal/pkg/models"
)

// ErrUnavailable is returned when a location capability cannot answer.
var ErrUnavailable = errors.New("location unavailable")

// Provider exposes the geolocation capabilities consumed by the handlers.
type Provider interface {
	// CurrentLocation returns the caller's current coordinates.
	CurrentLocation() (models.Location, error)
	// Geocode resolves a textual address into coordinates.
	Geocode(address string) (models.Location, error)
}

// StaticProvider reports a fixed coordinate and cannot geocode.
type StaticProvider struct {
	loc models.Location
}

// NewStaticProvider creates a provider pinned to the given coordinate.
func NewStaticProvider(lat, lon float64) *StaticProvider {
	return &StaticProvider{loc: models.Location{Latitude: lat, Longitude: lon}}
}

// CurrentLocation returns the configured coordinate.
func (p *StaticProvider) CurrentLocation() (models.Location, error) {
	return p.loc, nil
}

// Geocode is a stub; no geocoding backend is wired.
func (p *StaticProvider) Geocode(string) (models.Location, error) {
	return models.Location{}, ErrUnavailable
}
