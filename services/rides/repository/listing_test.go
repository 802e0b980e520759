package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sydoni/sydoni-drive/internal/pkg/models"
	"github.com/sydoni/sydoni-drive/internal/pkg/storage"
	"github.com/sydoni/sydoni-drive/services/rides"
)

func newListingRepo(t *testing.T) *ListingRepo {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)
	return NewListingRepo(store)
}

func sampleListing() *models.Listing {
	return &models.Listing{
		ID:               "l-1",
		DriverEmail:      "driver@example.com",
		Destination:      "Burkina Institut of Technology(BIT)",
		DepartureTime:    "09:30",
		SeatsOffered:     3,
		SeatsAvailable:   3,
		VehicleKind:      "moto",
		Status:           models.ListingStatusPending,
		Passengers:       []string{},
		Departure:        models.Location{Latitude: 12.25, Longitude: -2.36},
		DepartureGeohash: "eeq4h",
		PublishedAt:      time.Date(2025, 3, 14, 8, 30, 0, 0, time.UTC),
		HasReservations:  false,
	}
}

func TestListingRepo_CreateAndGet(t *testing.T) {
	repo := newListingRepo(t)
	ctx := context.Background()

	want := sampleListing()
	want.Passengers = []string{"b@example.com", "a@example.com"}
	want.HasReservations = true
	require.NoError(t, repo.CreateListing(ctx, want))

	got, err := repo.GetListing(ctx, "l-1")
	require.NoError(t, err)
	assert.Equal(t, want.DriverEmail, got.DriverEmail)
	assert.Equal(t, want.Destination, got.Destination)
	assert.Equal(t, want.DepartureTime, got.DepartureTime)
	assert.Equal(t, want.SeatsOffered, got.SeatsOffered)
	assert.Equal(t, want.VehicleKind, got.VehicleKind)
	assert.Equal(t, want.Status, got.Status)
	// Reservation order must survive the round trip
	assert.Equal(t, []string{"b@example.com", "a@example.com"}, got.Passengers)
	assert.Equal(t, want.DepartureGeohash, got.DepartureGeohash)
	assert.True(t, got.PublishedAt.Equal(want.PublishedAt))
	assert.True(t, got.HasReservations)
}

func TestListingRepo_GetUnknown(t *testing.T) {
	repo := newListingRepo(t)

	_, err := repo.GetListing(context.Background(), "missing")
	assert.ErrorIs(t, err, rides.ErrListingNotFound)
}

func TestListingRepo_Update(t *testing.T) {
	repo := newListingRepo(t)
	ctx := context.Background()

	listing := sampleListing()
	require.NoError(t, repo.CreateListing(ctx, listing))

	listing.SeatsAvailable = 2
	listing.Passengers = []string{"p@example.com"}
	listing.HasReservations = true
	require.NoError(t, repo.UpdateListing(ctx, listing))

	got, err := repo.GetListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.SeatsAvailable)
	assert.Equal(t, []string{"p@example.com"}, got.Passengers)

	unknown := sampleListing()
	unknown.ID = "missing"
	assert.ErrorIs(t, repo.UpdateListing(ctx, unknown), rides.ErrListingNotFound)
}

func TestListingRepo_Delete(t *testing.T) {
	repo := newListingRepo(t)
	ctx := context.Background()

	listing := sampleListing()
	require.NoError(t, repo.CreateListing(ctx, listing))
	require.NoError(t, repo.DeleteListing(ctx, listing.ID))

	_, err := repo.GetListing(ctx, listing.ID)
	assert.ErrorIs(t, err, rides.ErrListingNotFound)
	assert.ErrorIs(t, repo.DeleteListing(ctx, listing.ID), rides.ErrListingNotFound)
}
