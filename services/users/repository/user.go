package repository

import (
	"context"

	"github.com/sydoni/sydoni-drive/internal/pkg/models"
	"github.com/sydoni/sydoni-drive/internal/pkg/storage"
	"github.com/sydoni/sydoni-drive/services/users"
)

// UserRepo implements users.UserRepo over the flat-file store. Every
// operation is a full load-mutate-save cycle against the users collection.
type UserRepo struct {
	store *storage.Store
}

// NewUserRepo creates a new user repository
func NewUserRepo(store *storage.Store) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) loadAll() ([]*models.User, error) {
	var all []*models.User
	if err := r.store.Load(storage.CollectionUsers, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *UserRepo) saveAll(all []*models.User) error {
	return r.store.Save(storage.CollectionUsers, all)
}

// CreateUser appends a new user to the collection
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	all, err := r.loadAll()
	if err != nil {
		return err
	}
	all = append(all, user)
	return r.saveAll(all)
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	all, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for _, u := range all {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, users.ErrUserNotFound
}

// UpdateUser replaces the stored record matching the user's email
func (r *UserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	all, err := r.loadAll()
	if err != nil {
		return err
	}
	for i, u := range all {
		if u.Email == user.Email {
			all[i] = user
			return r.saveAll(all)
		}
	}
	return users.ErrUserNotFound
}

// ListUsers returns every registered user
func (r *UserRepo) ListUsers(ctx context.Context) ([]*models.User, error) {
	return r.loadAll()
}
