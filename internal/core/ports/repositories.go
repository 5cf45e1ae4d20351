package ports

import (
	"context"
	"time"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
)

// UserRepository persists the user collection. Deletion is soft and goes
// through Update (Active=false); records are never removed.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	// Update replaces the record matching user.ID.
	Update(ctx context.Context, user *domain.User) error
}

// AssessmentRepository persists completed assessments.
type AssessmentRepository interface {
	List(ctx context.Context) ([]domain.Assessment, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Assessment, error)
	FindByID(ctx context.Context, id string) (*domain.Assessment, error)
	Create(ctx context.Context, assessment *domain.Assessment) error
	Delete(ctx context.Context, id string) error
}

// ActionPlanRepository persists the "all plans" superset. Filtered views are
// always derived from it, never stored.
type ActionPlanRepository interface {
	List(ctx context.Context) ([]domain.ActionPlan, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ActionPlan, error)
	FindByID(ctx context.Context, id string) (*domain.ActionPlan, error)
	Create(ctx context.Context, plan *domain.ActionPlan) error
	Update(ctx context.Context, plan *domain.ActionPlan) error
	Delete(ctx context.Context, id string) error
}

// CustomPracticeRepository persists user-defined practices appended to the
// static catalog at read time.
type CustomPracticeRepository interface {
	List(ctx context.Context) ([]domain.CustomPractice, error)
	Add(ctx context.Context, custom domain.CustomPractice) error
	Remove(ctx context.Context, categoryID string, practiceID int) error
}

// DraftRepository persists per-user in-progress questionnaire state.
// Get returns domain.ErrAssessmentNotFound when no draft exists.
type DraftRepository interface {
	Get(ctx context.Context, userID string) (*domain.AssessmentDraft, error)
	Put(ctx context.Context, userID string, draft *domain.AssessmentDraft) error
	Clear(ctx context.Context, userID string) error
}

// SessionStore holds the authenticated-user snapshot for the lifetime of a
// token. Get returns domain.ErrSessionExpired for unknown or expired tokens.
type SessionStore interface {
	Put(ctx context.Context, token string, user *domain.User, ttl time.Duration) error
	Get(ctx context.Context, token string) (*domain.User, error)
	Remove(ctx context.Context, token string) error
}
