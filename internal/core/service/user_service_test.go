package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     []domain.User
	updateErr error
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users = append(r.users, *user)
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func seedAdmin() SeedAdmin {
	return SeedAdmin{Name: "Administrador", Email: "admin@exemplo.com", Password: "admin123"}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestUserService_Create_Success(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewUserService(repo, seedAdmin(), discardLogger)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Alice", Email: "alice@example.com", Password: "s3cret", Role: domain.RoleUser, Active: true,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be stamped")
	}
	if !user.Active || user.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{users: []domain.User{
		{ID: "u1", Email: "alice@example.com", Role: domain.RoleUser, Active: false},
	}}
	svc := NewUserService(repo, seedAdmin(), discardLogger)

	// Inactive accounts still hold their email.
	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Other", Email: "Alice@Example.com", Password: "x", Role: domain.RoleUser, Active: true,
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("collection changed on rejected create")
	}
}

func TestUserService_Deactivate_SoftDeletes(t *testing.T) {
	repo := &stubUserRepo{users: []domain.User{
		{ID: "a1", Email: "admin@example.com", Role: domain.RoleAdmin, Active: true},
		{ID: "u1", Email: "bob@example.com", Role: domain.RoleUser, Active: true},
	}}
	svc := NewUserService(repo, seedAdmin(), discardLogger)

	if err := svc.Deactivate(context.Background(), "u1"); err != nil {
		t.Fatalf("Deactivate returned error: %v", err)
	}
	if len(repo.users) != 2 {
		t.Fatalf("soft delete must keep the record")
	}
	if repo.users[1].Active {
		t.Fatalf("expected user to be inactive")
	}
}

func TestUserService_Deactivate_LastActiveAdmin(t *testing.T) {
	repo := &stubUserRepo{users: []domain.User{
		{ID: "a1", Email: "admin@example.com", Role: domain.RoleAdmin, Active: true},
		{ID: "a2", Email: "former@example.com", Role: domain.RoleAdmin, Active: false},
		{ID: "u1", Email: "bob@example.com", Role: domain.RoleUser, Active: true},
	}}
	svc := NewUserService(repo, seedAdmin(), discardLogger)

	err := svc.Deactivate(context.Background(), "a1")
	if !errors.Is(err, domain.ErrLastAdmin) {
		t.Fatalf("expected ErrLastAdmin, got %v", err)
	}

	// The collection is byte-for-byte what it was.
	if !repo.users[0].Active || repo.users[0].Role != domain.RoleAdmin {
		t.Fatalf("user list changed after rejected deactivation: %+v", repo.users[0])
	}
}

func TestUserService_Deactivate_AdminWithBackup(t *testing.T) {
	repo := &stubUserRepo{users: []domain.User{
		{ID: "a1", Email: "admin@example.com", Role: domain.RoleAdmin, Active: true},
		{ID: "a2", Email: "other@example.com", Role: domain.RoleAdmin, Active: true},
	}}
	svc := NewUserService(repo, seedAdmin(), discardLogger)

	if err := svc.Deactivate(context.Background(), "a1"); err != nil {
		t.Fatalf("Deactivate returned error: %v", err)
	}
}

func TestUserService_Update_DemoteLastAdminRejected(t *testing.T) {
	repo := &stubUserRepo{users: []domain.User{
		{ID: "a1", Email: "admin@example.com", Role: domain.RoleAdmin, Active: true},
	}}
	svc := NewUserService(repo, seedAdmin(), discardLogger)

	role := domain.RoleUser
	_, err := svc.Update(context.Background(), "a1", ports.UpdateUserInput{Role: &role})
	if !errors.Is(err, domain.ErrLastAdmin) {
		t.Fatalf("expected ErrLastAdmin, got %v", err)
	}
	if repo.users[0].Role != domain.RoleAdmin {
		t.Fatalf("role changed after rejected update")
	}
}

func TestUserService_Update_EmailUniqueAcrossOthers(t *testing.T) {
	repo := &stubUserRepo{users: []domain.User{
		{ID: "u1", Email: "alice@example.com", Role: domain.RoleUser, Active: true},
		{ID: "u2", Email: "bob@example.com", Role: domain.RoleUser, Active: true},
	}}
	svc := NewUserService(repo, seedAdmin(), discardLogger)

	email := "alice@example.com"
	if _, err := svc.Update(context.Background(), "u2", ports.UpdateUserInput{Email: &email}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// Re-submitting your own email is fine.
	if _, err := svc.Update(context.Background(), "u1", ports.UpdateUserInput{Email: &email}); err != nil {
		t.Fatalf("own email rejected: %v", err)
	}
}

func TestUserService_Stats(t *testing.T) {
	repo := &stubUserRepo{users: []domain.User{
		{ID: "a1", Role: domain.RoleAdmin, Active: true},
		{ID: "u1", Role: domain.RoleUser, Active: true},
		{ID: "u2", Role: domain.RoleUser, Active: false},
	}}
	svc := NewUserService(repo, seedAdmin(), discardLogger)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Total != 3 || stats.Active != 2 || stats.Admins != 1 || stats.Regular != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestUserService_EnsureAdmin_SeedsOnce(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewUserService(repo, seedAdmin(), discardLogger)

	if err := svc.EnsureAdmin(context.Background()); err != nil {
		t.Fatalf("EnsureAdmin returned error: %v", err)
	}
	if len(repo.users) != 1 || repo.users[0].Role != domain.RoleAdmin || !repo.users[0].Active {
		t.Fatalf("expected seeded admin, got %+v", repo.users)
	}
	if repo.users[0].Email != "admin@exemplo.com" {
		t.Fatalf("unexpected seed email: %s", repo.users[0].Email)
	}

	if err := svc.EnsureAdmin(context.Background()); err != nil {
		t.Fatalf("second EnsureAdmin returned error: %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("EnsureAdmin must not seed twice")
	}
}
