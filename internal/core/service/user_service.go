package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/ports"
)

// SeedAdmin holds the default admin credentials created on first start.
type SeedAdmin struct {
	Name     string
	Email    string
	Password string
}

// UserService implements admin user management over the soft-delete user
// collection.
type UserService struct {
	users  ports.UserRepository
	seed   SeedAdmin
	logger zerolog.Logger
	now    func() time.Time
}

func NewUserService(users ports.UserRepository, seed SeedAdmin, logger zerolog.Logger) *UserService {
	return &UserService{users: users, seed: seed, logger: logger, now: time.Now}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Create registers a new account. The email must be unique across the whole
// collection, inactive accounts included.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Role != domain.RoleAdmin && input.Role != domain.RoleUser {
		return nil, domain.ErrInvalidCredentials
	}
	if taken, err := s.emailTaken(ctx, input.Email, ""); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrEmailTaken
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		Role:      input.Role,
		CreatedAt: s.now().UTC(),
		Active:    input.Active,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user created")
	return user, nil
}

// Update applies a partial update. A role change away from admin counts as
// losing an admin, so it is held to the same last-admin invariant as
// deactivation.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		if taken, err := s.emailTaken(ctx, *input.Email, id); err != nil {
			return nil, err
		} else if taken {
			return nil, domain.ErrEmailTaken
		}
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Password != nil && *input.Password != "" {
		user.Password = *input.Password
	}

	losesAdmin := false
	if input.Role != nil && *input.Role != user.Role {
		if *input.Role != domain.RoleAdmin && *input.Role != domain.RoleUser {
			return nil, domain.ErrInvalidCredentials
		}
		losesAdmin = user.Role == domain.RoleAdmin
		user.Role = *input.Role
	}
	if input.Active != nil {
		if !*input.Active && user.Role == domain.RoleAdmin {
			losesAdmin = true
		}
		user.Active = *input.Active
	}

	if losesAdmin {
		if err := s.requireAnotherActiveAdmin(ctx, id); err != nil {
			return nil, err
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user updated")
	return user, nil
}

// Deactivate soft-deletes the account. The check and the write are a single
// read-modify-write against the repository, so a rejected deactivation
// leaves the collection untouched.
func (s *UserService) Deactivate(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Role == domain.RoleAdmin {
		if err := s.requireAnotherActiveAdmin(ctx, id); err != nil {
			return err
		}
	}

	user.Active = false
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("user deactivated")
	return nil
}

// Stats summarises the collection for the admin dashboard.
func (s *UserService) Stats(ctx context.Context) (*ports.UserStats, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.UserStats{Total: len(users)}
	for _, u := range users {
		if u.Active {
			stats.Active++
		}
		if u.Role == domain.RoleAdmin {
			stats.Admins++
		} else {
			stats.Regular++
		}
	}
	return stats, nil
}

// EnsureAdmin creates the seeded admin account when the collection holds no
// admin at all.
func (s *UserService) EnsureAdmin(ctx context.Context) error {
	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Role == domain.RoleAdmin {
			return nil
		}
	}

	admin := &domain.User{
		ID:        "admin-" + uuid.NewString(),
		Name:      s.seed.Name,
		Email:     s.seed.Email,
		Password:  s.seed.Password,
		Role:      domain.RoleAdmin,
		CreatedAt: s.now().UTC(),
		Active:    true,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info().Str("email", admin.Email).Msg("default admin seeded")
	return nil
}

func (s *UserService) emailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.ID != excludeID && strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// requireAnotherActiveAdmin fails with ErrLastAdmin unless an active admin
// other than excludeID exists.
func (s *UserService) requireAnotherActiveAdmin(ctx context.Context, excludeID string) error {
	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.ID != excludeID && u.Role == domain.RoleAdmin && u.Active {
			return nil
		}
	}
	return domain.ErrLastAdmin
}
