package ports

import (
	"context"
	"time"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
)

// CreateActionPlanInput carries a new plan for a low-maturity practice.
// MaturityScore is snapshotted as-is; the service never recomputes it.
type CreateActionPlanInput struct {
	UserID        string
	UserName      string
	AssessmentID  string
	PracticeID    string // "categoryId-practiceId"
	CategoryName  string
	PracticeName  string
	MaturityScore int
	Title         string
	Description   string
	Responsible   string
	Priority      domain.PlanPriority
	DueDate       *time.Time
	Status        domain.PlanStatus
}

// UpdateActionPlanInput carries the mutable fields of an existing plan.
// Identity, ownership, origin, and the score snapshot never change.
type UpdateActionPlanInput struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Responsible string
	Priority    domain.PlanPriority
	DueDate     *time.Time
	Status      domain.PlanStatus
}

// ActionPlanFilter scopes a plan listing. Squad and value-stream values of
// "" or "all" match everything; any other value is joined through the plan's
// originating assessment.
type ActionPlanFilter struct {
	UserID      string
	SquadName   string
	ValueStream string
}

// ActionPlanService reconciles the action-plan collection with its filtered
// views.
type ActionPlanService interface {
	Create(ctx context.Context, input CreateActionPlanInput) (*domain.ActionPlan, error)
	Update(ctx context.Context, input UpdateActionPlanInput) (*domain.ActionPlan, error)
	Delete(ctx context.Context, id, userID string) error
	List(ctx context.Context, filter ActionPlanFilter) ([]domain.ActionPlan, error)
}
