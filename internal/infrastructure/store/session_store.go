package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
)

// sessionUser is the persisted session snapshot. It never carries the
// password.
type sessionUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// SessionStore holds authenticated-user snapshots keyed by token, expiring
// with the token's lifetime.
type SessionStore struct {
	store Store
}

func NewSessionStore(store Store) *SessionStore {
	return &SessionStore{store: store}
}

func (s *SessionStore) Put(ctx context.Context, token string, user *domain.User, ttl time.Duration) error {
	raw, err := json.Marshal(sessionUser{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Active: user.Active,
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.store.Set(ctx, KeySessionPrefix+token, raw, ttl)
}

func (s *SessionStore) Get(ctx context.Context, token string) (*domain.User, error) {
	raw, err := s.store.Get(ctx, KeySessionPrefix+token)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, domain.ErrSessionExpired
		}
		return nil, err
	}

	var su sessionUser
	if err := json.Unmarshal(raw, &su); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &domain.User{
		ID:     su.ID,
		Name:   su.Name,
		Email:  su.Email,
		Role:   su.Role,
		Active: su.Active,
	}, nil
}

func (s *SessionStore) Remove(ctx context.Context, token string) error {
	return s.store.Remove(ctx, KeySessionPrefix+token)
}
