package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/ports"
)

// AuthService implements login and logout. Credentials are compared as
// stored; there is no hashing layer in this system.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionStore,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
		now:       time.Now,
	}
}

// Login authenticates an active user by email and password, stamps the last
// login, stores the session snapshot, and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Not-found collapses into invalid credentials: the login form never
		// learns whether the account exists.
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.Active || user.Password != password {
		return "", nil, domain.ErrInvalidCredentials
	}

	lastLogin := s.now().UTC()
	user.LastLogin = &lastLogin
	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to stamp last login")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	if err := s.sessions.Put(ctx, token, user, s.tokenTTL); err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user logged in")
	return token, user, nil
}

// Logout discards the session snapshot, invalidating the token even before
// its expiry.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Remove(ctx, token)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"role":    user.Role,
		"exp":     s.now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
