package userRepo

import (
	"context"

	"medicare/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByEmail retrieves a user by its email address; nil, nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// UpsertByEmail inserts user unless one with the same email exists and
	// returns the id of the stored record.
	UpsertByEmail(ctx context.Context, user *models.User) (interface{}, error)
	// SetRole sets role on the user with the given id, creating the record
	// when none exists.
	SetRole(ctx context.Context, id, role string) (*models.UpdateResult, error)
	EnsureIndexes(ctx context.Context) error
}
