package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sydoni/sydoni-drive/internal/pkg/models"
	"github.com/sydoni/sydoni-drive/services/rides"
)

func listingIDs(listings []*models.Listing) []string {
	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestAvailableListings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerDriver(t, "d@example.com")
	f.registerPassenger(t, "p@example.com")

	open := f.publish(t, "d@example.com", "10:30", 2, departurePoint)

	// Departure time already behind the clock (now is 09:00)
	f.publish(t, "d@example.com", "08:00", 2, departurePoint)

	// Last seat taken
	full := f.publish(t, "d@example.com", "10:30", 1, departurePoint)
	require.NoError(t, f.uc.Reserve(ctx, full.ID, "p@example.com", departurePoint))

	// Cancelled
	cancelled := f.publish(t, "d@example.com", "10:30", 2, departurePoint)
	require.NoError(t, f.uc.Cancel(ctx, cancelled.ID))

	got, err := f.uc.AvailableListings(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{open.ID}, listingIDs(got))
}

func TestAvailableListings_MalformedTimeSkipped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerDriver(t, "d@example.com")

	good := f.publish(t, "d@example.com", "10:30", 2, departurePoint)
	bad := f.publish(t, "d@example.com", "10:30", 2, departurePoint)
	bad.DepartureTime = "9h30"
	require.NoError(t, f.uc.listingRepo.UpdateListing(ctx, bad))

	got, err := f.uc.AvailableListings(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{good.ID}, listingIDs(got))
}

func TestListingsFor_PassengerOnTheWay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerDriver(t, "d@example.com")

	// BIT campus sits at 12.2419; the driver leaves from ~5 km north of it.
	driverStart := models.Location{Latitude: 12.2869, Longitude: -2.4083}
	listing := f.publish(t, "d@example.com", "10:30", 2, driverStart)

	// A passenger ~2 km from campus is between the driver and the destination.
	onTheWay := models.Location{Latitude: 12.2599, Longitude: -2.4083}
	got, err := f.uc.ListingsFor(ctx, campusBIT, onTheWay)
	require.NoError(t, err)
	assert.Equal(t, []string{listing.ID}, listingIDs(got))

	// A passenger ~7 km out is behind the driver and gets nothing.
	behind := models.Location{Latitude: 12.3019, Longitude: -2.4083}
	got, err = f.uc.ListingsFor(ctx, campusBIT, behind)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Equal distance is excluded, the comparison is strict.
	got, err = f.uc.ListingsFor(ctx, campusBIT, driverStart)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListingsFor_DestinationCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerDriver(t, "d@example.com")

	driverStart := models.Location{Latitude: 12.2869, Longitude: -2.4083}
	listing := f.publish(t, "d@example.com", "10:30", 2, driverStart)

	onTheWay := models.Location{Latitude: 12.2599, Longitude: -2.4083}
	got, err := f.uc.ListingsFor(ctx, "BURKINA INSTITUT OF TECHNOLOGY(BIT)", onTheWay)
	require.NoError(t, err)
	assert.Equal(t, []string{listing.ID}, listingIDs(got))
}

func TestListingsFor_UnknownDestination(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.ListingsFor(context.Background(), "Campus Inconnu", models.Location{})
	assert.ErrorIs(t, err, rides.ErrUnknownDestination)
}

func TestListNearby(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerDriver(t, "d@example.com")

	near := f.publish(t, "d@example.com", "10:30", 2, departurePoint)

	// Roughly 110 km north, well outside the neighbor cells
	farPoint := models.Location{Latitude: departurePoint.Latitude + 1.0, Longitude: departurePoint.Longitude}
	f.publish(t, "d@example.com", "10:30", 2, farPoint)

	got, err := f.uc.ListNearby(ctx, departurePoint)
	require.NoError(t, err)
	assert.Equal(t, []string{near.ID}, listingIDs(got))
}

func TestHistoryFor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerDriver(t, "d@example.com")
	f.registerPassenger(t, "p@example.com")

	listing := f.publish(t, "d@example.com", "10:30", 2, departurePoint)
	require.NoError(t, f.uc.Reserve(ctx, listing.ID, "p@example.com", departurePoint))

	driverHistory, err := f.uc.HistoryFor(ctx, "d@example.com")
	require.NoError(t, err)
	require.Len(t, driverHistory, 1)
	assert.Equal(t, models.RoleDriver, driverHistory[0].Role)
	assert.Equal(t, listing.ID, driverHistory[0].ListingID)

	passengerHistory, err := f.uc.HistoryFor(ctx, "p@example.com")
	require.NoError(t, err)
	require.Len(t, passengerHistory, 1)
	assert.Equal(t, models.RolePassenger, passengerHistory[0].Role)

	empty, err := f.uc.HistoryFor(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
