package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sydoni/sydoni-drive/internal/pkg/models"
	"github.com/sydoni/sydoni-drive/internal/pkg/storage"
	"github.com/sydoni/sydoni-drive/services/users"
	"github.com/sydoni/sydoni-drive/services/users/repository"
)

func newTestUC(t *testing.T) *UserUC {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)
	return NewUserUC(repository.NewUserRepo(store))
}

func intPtr(v int) *int { return &v }

func driverUser(email string) *models.User {
	return &models.User{
		Email:        email,
		FirstName:    "Awa",
		LastName:     "Ouedraogo",
		Phone:        "+22670000000",
		University:   "Université Norbert Zongo (UNZ)",
		Role:         models.RoleDriver,
		VehicleKind:  "voiture",
		SeatCapacity: intPtr(3),
	}
}

func TestRegister(t *testing.T) {
	uc := newTestUC(t)
	ctx := context.Background()

	require.NoError(t, uc.Register(ctx, driverUser("d@example.com")))

	got, err := uc.GetByEmail(ctx, "d@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleDriver, got.Role)
	assert.Equal(t, 0, got.Points)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := newTestUC(t)
	ctx := context.Background()

	require.NoError(t, uc.Register(ctx, driverUser("d@example.com")))
	err := uc.Register(ctx, driverUser("d@example.com"))
	assert.ErrorIs(t, err, users.ErrEmailTaken)
}

func TestRegister_InvalidRole(t *testing.T) {
	uc := newTestUC(t)

	user := driverUser("d@example.com")
	user.Role = "pilote"
	assert.ErrorIs(t, uc.Register(context.Background(), user), users.ErrInvalidRole)
}

func TestRegister_DriverNeedsVehicle(t *testing.T) {
	uc := newTestUC(t)

	user := driverUser("d@example.com")
	user.VehicleKind = ""
	assert.ErrorIs(t, uc.Register(context.Background(), user), users.ErrDriverInfo)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := newTestUC(t)

	_, err := uc.Login(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUpdateRole(t *testing.T) {
	uc := newTestUC(t)
	ctx := context.Background()

	require.NoError(t, uc.Register(ctx, driverUser("d@example.com")))
	require.NoError(t, uc.UpdateRole(ctx, "d@example.com", models.RolePassenger))

	got, err := uc.GetByEmail(ctx, "d@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RolePassenger, got.Role)

	assert.ErrorIs(t, uc.UpdateRole(ctx, "nobody@example.com", models.RoleDriver), users.ErrUserNotFound)
	assert.ErrorIs(t, uc.UpdateRole(ctx, "d@example.com", "pilote"), users.ErrInvalidRole)
}

func TestAddPoints_MayGoNegative(t *testing.T) {
	uc := newTestUC(t)
	ctx := context.Background()

	require.NoError(t, uc.Register(ctx, driverUser("d@example.com")))

	total, err := uc.AddPoints(ctx, "d@example.com", 15)
	require.NoError(t, err)
	assert.Equal(t, 15, total)

	total, err = uc.AddPoints(ctx, "d@example.com", -20)
	require.NoError(t, err)
	assert.Equal(t, -5, total)

	got, err := uc.GetByEmail(ctx, "d@example.com")
	require.NoError(t, err)
	assert.Equal(t, -5, got.Points)
}
