package users

import (
	"context"
	"errors"

	"github.com/sydoni/sydoni-drive/internal/pkg/models"
)

// Domain errors for user operations.
var (
	ErrEmailTaken   = errors.New("an account with this email already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("role must be automobiliste or passager")
	ErrDriverInfo   = errors.New("a driver must declare a vehicle and seat capacity")
)

// UserUC defines the interface for user business logic
type UserUC interface {
	Register(ctx context.Context, user *models.User) error
	Login(ctx context.Context, email string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateRole(ctx context.Context, email string, role models.UserRole) error
	AddPoints(ctx context.Context, email string, delta int) (int, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// UserRepo defines the interface for user data access operations
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context) ([]*models.User, error)
}
