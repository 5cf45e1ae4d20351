package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
)

type stubSessionStore struct {
	sessions map[string]*domain.User
	putErr   error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.User)}
}

func (s *stubSessionStore) Put(_ context.Context, token string, user *domain.User, _ time.Duration) error {
	if s.putErr != nil {
		return s.putErr
	}
	clone := *user
	s.sessions[token] = &clone
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (*domain.User, error) {
	user, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionExpired
	}
	clone := *user
	return &clone, nil
}

func (s *stubSessionStore) Remove(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func activeUser() domain.User {
	return domain.User{
		ID:       "u1",
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret",
		Role:     domain.RoleUser,
		Active:   true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := &stubUserRepo{users: []domain.User{activeUser()}}
	sessions := newStubSessionStore()
	svc := NewAuthService(repo, sessions, "secret", time.Hour, discardLogger)

	token, user, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" || user == nil {
		t.Fatalf("expected token and user")
	}

	// Last login stamped and persisted.
	if repo.users[0].LastLogin == nil {
		t.Fatalf("expected lastLogin to be stamped")
	}

	// Session snapshot stored under the token.
	if _, err := sessions.Get(context.Background(), token); err != nil {
		t.Fatalf("session not stored: %v", err)
	}

	// Token carries the identity claims.
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims["user_id"] != "u1" || claims["role"] != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &stubUserRepo{users: []domain.User{activeUser()}}
	svc := NewAuthService(repo, newStubSessionStore(), "secret", time.Hour, discardLogger)

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "nope"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, newStubSessionStore(), "secret", time.Hour, discardLogger)

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "x"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	user := activeUser()
	user.Active = false
	repo := &stubUserRepo{users: []domain.User{user}}
	svc := NewAuthService(repo, newStubSessionStore(), "secret", time.Hour, discardLogger)

	if _, _, err := svc.Login(context.Background(), user.Email, user.Password); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for inactive user, got %v", err)
	}
}

func TestAuthService_Logout_RemovesSession(t *testing.T) {
	repo := &stubUserRepo{users: []domain.User{activeUser()}}
	sessions := newStubSessionStore()
	svc := NewAuthService(repo, sessions, "secret", time.Hour, discardLogger)

	token, _, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := sessions.Get(context.Background(), token); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected session to be gone, got %v", err)
	}
}
