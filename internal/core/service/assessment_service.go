package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/ports"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/scoring"
)

// AssessmentService implements submission, history, drafts, and the
// dashboard summary.
type AssessmentService struct {
	assessments ports.AssessmentRepository
	drafts      ports.DraftRepository
	catalog     ports.CatalogService
	logger      zerolog.Logger
	now         func() time.Time
}

func NewAssessmentService(
	assessments ports.AssessmentRepository,
	drafts ports.DraftRepository,
	catalog ports.CatalogService,
	logger zerolog.Logger,
) *AssessmentService {
	return &AssessmentService{
		assessments: assessments,
		drafts:      drafts,
		catalog:     catalog,
		logger:      logger,
		now:         time.Now,
	}
}

// Submit persists a finished questionnaire and clears the user's draft.
// The submission timestamp doubles as the assessment id.
func (s *AssessmentService) Submit(ctx context.Context, input ports.SubmitAssessmentInput) (*domain.Assessment, error) {
	if strings.TrimSpace(input.SquadName) == "" {
		return nil, domain.ErrSquadNameRequired
	}
	for _, score := range input.Answers {
		if !domain.ValidScore(score) {
			return nil, domain.ErrInvalidScore
		}
	}

	now := s.now().UTC()
	assessment := &domain.Assessment{
		ID:           now.Format(time.RFC3339Nano),
		UserID:       input.UserID,
		UserName:     input.UserName,
		SquadName:    input.SquadName,
		ValueStream:  input.ValueStream,
		Answers:      input.Answers,
		Observations: input.Observations,
		Date:         now,
	}
	if assessment.Answers == nil {
		assessment.Answers = domain.AnswerMap{}
	}

	if err := s.assessments.Create(ctx, assessment); err != nil {
		s.logger.Error().Err(err).Str("squad", input.SquadName).Msg("failed to save assessment")
		return nil, err
	}

	if err := s.drafts.Clear(ctx, input.UserID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", input.UserID).Msg("failed to clear assessment draft")
	}

	s.logger.Info().Str("assessment_id", assessment.ID).Str("squad", assessment.SquadName).Msg("assessment submitted")
	return assessment, nil
}

// List returns the user's assessments, most recent first, optionally
// filtered by squad and value stream. IncludeAll lifts the ownership scope.
func (s *AssessmentService) List(ctx context.Context, input ports.ListAssessmentsInput) ([]domain.Assessment, error) {
	var all []domain.Assessment
	var err error
	if input.IncludeAll {
		all, err = s.assessments.List(ctx)
	} else {
		all, err = s.assessments.ListByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Assessment, 0, len(all))
	for _, a := range all {
		if !filterMatches(input.SquadName, a.SquadName) {
			continue
		}
		if !filterMatches(input.ValueStream, a.ValueStream) {
			continue
		}
		filtered = append(filtered, a)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})
	return filtered, nil
}

// Get returns one assessment, scoped to its owner.
func (s *AssessmentService) Get(ctx context.Context, id, userID string) (*domain.Assessment, error) {
	assessment, err := s.assessments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assessment.UserID != userID {
		return nil, domain.ErrAssessmentNotFound
	}
	return assessment, nil
}

// Delete removes an assessment. Action plans pointing at it keep their
// assessmentId and simply stop matching specific filters.
func (s *AssessmentService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return err
	}
	if err := s.assessments.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("assessment_id", id).Msg("assessment deleted")
	return nil
}

// Summary computes the dashboard view: overall and per-category/practice
// averages plus the low-maturity worklist.
func (s *AssessmentService) Summary(ctx context.Context, id, userID string) (*ports.AssessmentSummary, error) {
	assessment, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	overall := scoring.OverallAverage(assessment.Answers)
	summary := &ports.AssessmentSummary{
		Assessment:  *assessment,
		Overall:     overall,
		Level:       scoring.MaturityLevel(overall),
		Categories:  make([]ports.CategoryScore, 0, len(catalog)),
		LowMaturity: scoring.ExtractLowMaturity(catalog, assessment.Answers),
	}

	for _, category := range catalog {
		cs := ports.CategoryScore{
			ID:        category.ID,
			Name:      category.Name,
			Average:   scoring.CategoryAverage(category, assessment.Answers),
			Practices: make([]ports.PracticeScore, 0, len(category.Practices)),
		}
		cs.Level = scoring.MaturityLevel(cs.Average)

		for _, practice := range category.Practices {
			average := scoring.PracticeAverage(category, practice, assessment.Answers)
			cs.Practices = append(cs.Practices, ports.PracticeScore{
				ID:      practice.ID,
				Name:    practice.Name,
				Average: average,
				Level:   scoring.MaturityLevel(average),
			})
		}
		summary.Categories = append(summary.Categories, cs)
	}

	return summary, nil
}

// Filters lists distinct squads and value streams across the user's
// assessments, in first-seen order.
func (s *AssessmentService) Filters(ctx context.Context, userID string) (*ports.AssessmentFilters, error) {
	all, err := s.assessments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	filters := &ports.AssessmentFilters{Squads: []string{}, ValueStreams: []string{}}
	seenSquads := map[string]bool{}
	seenStreams := map[string]bool{}
	for _, a := range all {
		if !seenSquads[a.SquadName] {
			seenSquads[a.SquadName] = true
			filters.Squads = append(filters.Squads, a.SquadName)
		}
		if a.ValueStream != "" && !seenStreams[a.ValueStream] {
			seenStreams[a.ValueStream] = true
			filters.ValueStreams = append(filters.ValueStreams, a.ValueStream)
		}
	}
	return filters, nil
}

// Draft returns the user's saved progress, or an empty draft when none
// exists.
func (s *AssessmentService) Draft(ctx context.Context, userID string) (*domain.AssessmentDraft, error) {
	draft, err := s.drafts.Get(ctx, userID)
	if errors.Is(err, domain.ErrAssessmentNotFound) {
		return &domain.AssessmentDraft{Answers: domain.AnswerMap{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if draft.Answers == nil {
		draft.Answers = domain.AnswerMap{}
	}
	return draft, nil
}

// SaveDraft overwrites the user's saved progress.
func (s *AssessmentService) SaveDraft(ctx context.Context, userID string, draft *domain.AssessmentDraft) error {
	for _, score := range draft.Answers {
		if !domain.ValidScore(score) {
			return domain.ErrInvalidScore
		}
	}
	return s.drafts.Put(ctx, userID, draft)
}

// ClearDraft discards the user's saved progress.
func (s *AssessmentService) ClearDraft(ctx context.Context, userID string) error {
	return s.drafts.Clear(ctx, userID)
}

// filterMatches applies the "all"-aware filter convention.
func filterMatches(filter, value string) bool {
	return filter == "" || filter == "all" || filter == value
}
