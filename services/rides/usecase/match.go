package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/sydoni/sydoni-drive/internal/pkg/logger"
	"github.com/sydoni/sydoni-drive/internal/pkg/models"
	"github.com/sydoni/sydoni-drive/internal/utils"
	"github.com/sydoni/sydoni-drive/services/rides"
	"github.com/sydoni/sydoni-drive/services/universities"
)

// AvailableListings returns every listing still open for reservations: state
// en_attente, at least one free seat, and a departure time-of-day strictly
// after now. Listings carry no date, so the time is always resolved against
// today; a listing whose time has passed is excluded. Malformed time strings
// are logged and skipped, never fatal.
func (uc *rideUC) AvailableListings(ctx context.Context) ([]*models.Listing, error) {
	all, err := uc.listingRepo.ListListings(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	var available []*models.Listing
	for _, listing := range all {
		if listing.Status != models.ListingStatusPending || listing.SeatsAvailable <= 0 {
			continue
		}
		departure, err := listing.DepartureOn(now)
		if err != nil {
			logger.Warn("Malformed departure time, skipping listing",
				logger.String("listing_id", listing.ID),
				logger.String("departure_time", listing.DepartureTime))
			continue
		}
		if !departure.After(now) {
			continue
		}
		available = append(available, listing)
	}
	return available, nil
}

// ListingsFor returns the available listings toward a university that should
// be offered to a passenger at the given position. A listing is offered only
// when the passenger is strictly closer to the university than the driver's
// departure point: the driver can then detour to collect a passenger who is
// on the way. Equal distances are excluded.
func (uc *rideUC) ListingsFor(ctx context.Context, destination string, passenger models.Location) ([]*models.Listing, error) {
	campus, err := uc.directory.CoordinatesOf(ctx, destination)
	if err != nil {
		if errors.Is(err, universities.ErrNotFound) {
			return nil, rides.ErrUnknownDestination
		}
		return nil, err
	}

	available, err := uc.AvailableListings(ctx)
	if err != nil {
		return nil, err
	}

	campusPoint := utils.GeoPointFromLocation(campus)
	passengerDistance := utils.CalculateDistance(utils.GeoPointFromLocation(passenger), campusPoint)

	var offered []*models.Listing
	for _, listing := range available {
		if !strings.EqualFold(listing.Destination, destination) {
			continue
		}
		driverDistance := utils.CalculateDistance(utils.GeoPointFromLocation(listing.Departure), campusPoint)
		if passengerDistance < driverDistance {
			offered = append(offered, listing)
		}
	}
	return offered, nil
}

// ListNearby returns the available listings whose departure point falls in
// the same geohash cell as the given position or one of its eight neighbors,
// at the configured precision. Used by the map view.
func (uc *rideUC) ListNearby(ctx context.Context, position models.Location) ([]*models.Listing, error) {
	available, err := uc.AvailableListings(ctx)
	if err != nil {
		return nil, err
	}

	cells := make(map[string]struct{})
	for _, cell := range utils.CellWithNeighbors(position, uc.cfg.Match.NearbyPrecision) {
		cells[cell] = struct{}{}
	}

	var nearby []*models.Listing
	for _, listing := range available {
		cell := listing.DepartureGeohash
		if cell == "" {
			cell = utils.EncodeLocation(listing.Departure, uc.cfg.Match.NearbyPrecision)
		}
		if _, ok := cells[cell]; ok {
			nearby = append(nearby, listing)
		}
	}
	return nearby, nil
}

// HistoryFor returns the denormalized trip history view for a user.
func (uc *rideUC) HistoryFor(ctx context.Context, email string) ([]models.HistoryEntry, error) {
	return uc.historyRepo.EntriesFor(ctx, email)
}
