package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sydoni/sydoni-drive/internal/pkg/models"
)

func TestStore_LoadMissingCollection(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	var users []*models.User
	err = store.Load(CollectionUsers, &users)
	require.NoError(t, err)
	assert.Nil(t, users)
}

func TestStore_RoundTripListing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	published := time.Date(2025, 3, 14, 8, 30, 0, 0, time.UTC)
	listings := []*models.Listing{
		{
			ID:               "l-1",
			DriverEmail:      "driver@example.com",
			Destination:      "Université Norbert Zongo (UNZ)",
			DepartureTime:    "09:30",
			SeatsOffered:     3,
			SeatsAvailable:   1,
			VehicleKind:      "voiture",
			Status:           models.ListingStatusPending,
			Passengers:       []string{"a@example.com", "b@example.com"},
			Departure:        models.Location{Latitude: 12.25, Longitude: -2.36},
			DepartureGeohash: "eeq4h",
			PublishedAt:      published,
			HasReservations:  true,
		},
	}
	require.NoError(t, store.Save(CollectionListings, listings))

	var loaded []*models.Listing
	require.NoError(t, store.Load(CollectionListings, &loaded))
	require.Len(t, loaded, 1)

	got := loaded[0]
	assert.Equal(t, "l-1", got.ID)
	assert.Equal(t, "driver@example.com", got.DriverEmail)
	assert.Equal(t, "09:30", got.DepartureTime)
	assert.Equal(t, 3, got.SeatsOffered)
	assert.Equal(t, 1, got.SeatsAvailable)
	assert.Equal(t, models.ListingStatusPending, got.Status)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, got.Passengers)
	assert.Equal(t, "eeq4h", got.DepartureGeohash)
	assert.True(t, got.PublishedAt.Equal(published))
	assert.True(t, got.HasReservations)
}

func TestStore_RoundTripHistory(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	rating := 4
	history := models.History{
		"p@example.com": {
			"l-1": {
				ListingID:   "l-1",
				Role:        models.RolePassenger,
				Status:      models.ListingStatusCompleted,
				Rating:      &rating,
				RatingGiven: true,
			},
		},
	}
	require.NoError(t, store.Save(CollectionHistory, history))

	loaded := models.History{}
	require.NoError(t, store.Load(CollectionHistory, &loaded))
	entry := loaded["p@example.com"]["l-1"]
	assert.Equal(t, models.RolePassenger, entry.Role)
	assert.True(t, entry.RatingGiven)
	require.NotNil(t, entry.Rating)
	assert.Equal(t, 4, *entry.Rating)
}

func TestStore_SaveOverwrites(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(CollectionUsers, []*models.User{{Email: "a@example.com"}}))
	require.NoError(t, store.Save(CollectionUsers, []*models.User{{Email: "b@example.com"}}))

	var users []*models.User
	require.NoError(t, store.Load(CollectionUsers, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "b@example.com", users[0].Email)
}
