package ports

import (
	"context"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
)

// AuthService implements login and logout. Login returns the signed bearer
// token alongside the authenticated user.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, token string) error
}
