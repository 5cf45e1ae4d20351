package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/ports"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/scoring"
)

// ComparisonService resolves two assessments and delegates the arithmetic to
// the scoring engine.
type ComparisonService struct {
	assessments ports.AssessmentRepository
	plans       ports.ActionPlanRepository
	catalog     ports.CatalogService
	logger      zerolog.Logger
}

func NewComparisonService(
	assessments ports.AssessmentRepository,
	plans ports.ActionPlanRepository,
	catalog ports.CatalogService,
	logger zerolog.Logger,
) *ComparisonService {
	return &ComparisonService{assessments: assessments, plans: plans, catalog: catalog, logger: logger}
}

// Compare computes the per-practice and overall deltas between two of the
// user's assessments, annotated with the user's action plans.
func (s *ComparisonService) Compare(ctx context.Context, userID, baseID, compareID string) (*scoring.Comparison, error) {
	if baseID == compareID {
		return nil, domain.ErrSameAssessment
	}

	base, err := s.owned(ctx, baseID, userID)
	if err != nil {
		return nil, err
	}
	compare, err := s.owned(ctx, compareID, userID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	plans, err := s.plans.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := scoring.Compare(catalog, base.Answers, compare.Answers, plans)

	s.logger.Debug().
		Str("base_id", baseID).
		Str("compare_id", compareID).
		Int("overall_delta", result.OverallDelta).
		Msg("assessments compared")
	return &result, nil
}

func (s *ComparisonService) owned(ctx context.Context, id, userID string) (*domain.Assessment, error) {
	assessment, err := s.assessments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assessment.UserID != userID {
		return nil, domain.ErrAssessmentNotFound
	}
	return assessment, nil
}
