package usecase

import (
	"context"
	"errors"

	"github.com/sydoni/sydoni-drive/internal/pkg/logger"
	"github.com/sydoni/sydoni-drive/internal/pkg/models"
	"github.com/sydoni/sydoni-drive/services/users"
)

// UserUC implements the users.UserUC interface
type UserUC struct {
	userRepo users.UserRepo
}

// NewUserUC creates a new user use case
func NewUserUC(userRepo users.UserRepo) *UserUC {
	return &UserUC{userRepo: userRepo}
}

// Register registers a new user. The email is the identity key and must be
// unique; drivers must declare a vehicle kind and seat capacity.
func (u *UserUC) Register(ctx context.Context, user *models.User) error {
	if user.Role != models.RoleDriver && user.Role != models.RolePassenger {
		return users.ErrInvalidRole
	}
	if user.Role == models.RoleDriver && (user.VehicleKind == "" || user.SeatCapacity == nil) {
		return users.ErrDriverInfo
	}

	existing, err := u.userRepo.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, users.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return users.ErrEmailTaken
	}

	user.Points = 0
	if user.TripHistory == nil {
		user.TripHistory = []string{}
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return err
	}

	logger.Info("Registered user",
		logger.String("email", user.Email),
		logger.String("role", string(user.Role)))
	return nil
}

// Login authenticates a user by email. No password is implemented; the email
// is the sole identity key.
func (u *UserUC) Login(ctx context.Context, email string) (*models.User, error) {
	return u.userRepo.GetUserByEmail(ctx, email)
}

// GetByEmail retrieves a user by email
func (u *UserUC) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.userRepo.GetUserByEmail(ctx, email)
}

// UpdateRole switches a user between the driver and passenger roles. In-flight
// listings published under the previous role are not revalidated.
func (u *UserUC) UpdateRole(ctx context.Context, email string, role models.UserRole) error {
	if role != models.RoleDriver && role != models.RolePassenger {
		return users.ErrInvalidRole
	}

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	user.Role = role
	return u.userRepo.UpdateUser(ctx, user)
}

// AddPoints applies a point delta to a user's ledger and returns the new
// total. The balance may go negative.
func (u *UserUC) AddPoints(ctx context.Context, email string, delta int) (int, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return 0, err
	}

	user.Points += delta
	if err := u.userRepo.UpdateUser(ctx, user); err != nil {
		return 0, err
	}

	logger.Info("Updated user points",
		logger.String("email", email),
		logger.Int("delta", delta),
		logger.Int("total", user.Points))
	return user.Points, nil
}

// ListUsers retrieves all registered users
func (u *UserUC) ListUsers(ctx context.Context) ([]*models.User, error) {
	return u.userRepo.ListUsers(ctx)
}
