package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
)

// storedUser is the persistence shape of a user. The domain type never
// serialises the password; here it must survive the round trip.
type storedUser struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	Active    bool       `json:"active"`
}

func toStoredUser(u *domain.User) storedUser {
	return storedUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
		Active:    u.Active,
	}
}

func (su storedUser) toDomain() domain.User {
	return domain.User{
		ID:        su.ID,
		Name:      su.Name,
		Email:     su.Email,
		Password:  su.Password,
		Role:      su.Role,
		CreatedAt: su.CreatedAt,
		LastLogin: su.LastLogin,
		Active:    su.Active,
	}
}

// UserRepository persists the user collection as a single document.
type UserRepository struct {
	mu    sync.Mutex
	store Store
}

func NewUserRepository(store Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := loadCollection[storedUser](ctx, r.store, KeyUsers)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(stored))
	for _, su := range stored {
		users = append(users, su.toDomain())
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := loadCollection[storedUser](ctx, r.store, KeyUsers)
	if err != nil {
		return nil, err
	}
	for _, su := range stored {
		if su.ID == id {
			user := su.toDomain()
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := loadCollection[storedUser](ctx, r.store, KeyUsers)
	if err != nil {
		return nil, err
	}
	for _, su := range stored {
		if strings.EqualFold(su.Email, email) {
			user := su.toDomain()
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := loadCollection[storedUser](ctx, r.store, KeyUsers)
	if err != nil {
		return err
	}
	stored = append(stored, toStoredUser(user))
	return saveCollection(ctx, r.store, KeyUsers, stored)
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := loadCollection[storedUser](ctx, r.store, KeyUsers)
	if err != nil {
		return err
	}
	for i, su := range stored {
		if su.ID == user.ID {
			stored[i] = toStoredUser(user)
			return saveCollection(ctx, r.store, KeyUsers, stored)
		}
	}
	return domain.ErrUserNotFound
}
