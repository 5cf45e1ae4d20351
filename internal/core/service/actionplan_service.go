package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/ports"
)

// ActionPlanService reconciles the persisted plan superset with the
// per-user, per-filter views handed to callers.
type ActionPlanService struct {
	plans       ports.ActionPlanRepository
	assessments ports.AssessmentRepository
	logger      zerolog.Logger
	now         func() time.Time
}

func NewActionPlanService(
	plans ports.ActionPlanRepository,
	assessments ports.AssessmentRepository,
	logger zerolog.Logger,
) *ActionPlanService {
	return &ActionPlanService{plans: plans, assessments: assessments, logger: logger, now: time.Now}
}

// Create stamps identity and timestamps on a new plan. The maturity score is
// the snapshot passed in; it goes stale on purpose when newer assessments
// arrive.
func (s *ActionPlanService) Create(ctx context.Context, input ports.CreateActionPlanInput) (*domain.ActionPlan, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrPlanInvalid)
	}

	now := s.now().UTC()
	plan := &domain.ActionPlan{
		ID:            fmt.Sprintf("plan-%d", now.UnixMilli()),
		UserID:        input.UserID,
		UserName:      input.UserName,
		AssessmentID:  input.AssessmentID,
		PracticeID:    input.PracticeID,
		CategoryName:  input.CategoryName,
		PracticeName:  input.PracticeName,
		MaturityScore: input.MaturityScore,
		Title:         input.Title,
		Description:   input.Description,
		Responsible:   input.Responsible,
		Priority:      input.Priority,
		DueDate:       input.DueDate,
		Status:        input.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if plan.Priority == "" {
		plan.Priority = domain.PriorityMedium
	}
	if plan.Status == "" {
		plan.Status = domain.PlanTodo
	}
	if !domain.ValidPlanPriority(plan.Priority) || !domain.ValidPlanStatus(plan.Status) {
		return nil, fmt.Errorf("%w: unknown priority or status", domain.ErrPlanInvalid)
	}

	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("plan_id", plan.ID).
		Str("practice_id", plan.PracticeID).
		Int("maturity_score", plan.MaturityScore).
		Msg("action plan created")
	return plan, nil
}

// Update replaces the mutable fields of the plan matching input.ID, keeping
// id, ownership, origin, score snapshot, and createdAt intact. UpdatedAt is
// always refreshed.
func (s *ActionPlanService) Update(ctx context.Context, input ports.UpdateActionPlanInput) (*domain.ActionPlan, error) {
	plan, err := s.findOwned(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if !domain.ValidPlanPriority(input.Priority) || !domain.ValidPlanStatus(input.Status) {
		return nil, fmt.Errorf("%w: unknown priority or status", domain.ErrPlanInvalid)
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrPlanInvalid)
	}

	plan.Title = input.Title
	plan.Description = input.Description
	plan.Responsible = input.Responsible
	plan.Priority = input.Priority
	plan.DueDate = input.DueDate
	plan.Status = input.Status
	plan.UpdatedAt = s.now().UTC()

	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.Info().Str("plan_id", plan.ID).Str("status", string(plan.Status)).Msg("action plan updated")
	return plan, nil
}

// Delete removes a plan from the persisted superset; every derived view
// loses it on the next read.
func (s *ActionPlanService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.findOwned(ctx, id, userID); err != nil {
		return err
	}
	if err := s.plans.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("plan_id", id).Msg("action plan deleted")
	return nil
}

// List returns the user's plans, joined to their originating assessment when
// a specific squad or value-stream filter applies. A plan whose assessment
// no longer exists never matches a specific filter but always appears under
// "all".
func (s *ActionPlanService) List(ctx context.Context, filter ports.ActionPlanFilter) ([]domain.ActionPlan, error) {
	plans, err := s.plans.ListByUser(ctx, filter.UserID)
	if err != nil {
		return nil, err
	}

	squadActive := specificFilter(filter.SquadName)
	streamActive := specificFilter(filter.ValueStream)
	if !squadActive && !streamActive {
		return plans, nil
	}

	assessments, err := s.assessments.ListByUser(ctx, filter.UserID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Assessment, len(assessments))
	for _, a := range assessments {
		byID[a.ID] = a
	}

	filtered := make([]domain.ActionPlan, 0, len(plans))
	for _, plan := range plans {
		origin, ok := byID[plan.AssessmentID]
		if !ok {
			continue // dangling assessmentId: excluded from every specific filter
		}
		if squadActive && origin.SquadName != filter.SquadName {
			continue
		}
		if streamActive && origin.ValueStream != filter.ValueStream {
			continue
		}
		filtered = append(filtered, plan)
	}
	return filtered, nil
}

func (s *ActionPlanService) findOwned(ctx context.Context, id, userID string) (*domain.ActionPlan, error) {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, domain.ErrPlanNotFound
	}
	return plan, nil
}

func specificFilter(value string) bool {
	return value != "" && value != "all"
}
