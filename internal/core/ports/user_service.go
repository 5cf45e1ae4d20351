package ports

import (
	"context"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
)

// CreateUserInput carries the fields for a new account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Active   bool
}

// UpdateUserInput carries a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
	Active   *bool
}

// UserStats summarises the user collection for the admin dashboard.
type UserStats struct {
	Total   int `json:"totalUsers"`
	Active  int `json:"activeUsers"`
	Admins  int `json:"adminUsers"`
	Regular int `json:"regularUsers"`
}

// UserService defines the admin user-management use cases.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// Deactivate soft-deletes the user. Deactivating the last active admin
	// fails with domain.ErrLastAdmin and leaves the collection unchanged.
	Deactivate(ctx context.Context, id string) error
	Stats(ctx context.Context) (*UserStats, error)
	// EnsureAdmin seeds the default admin account when no admin exists yet.
	EnsureAdmin(ctx context.Context) error
}
