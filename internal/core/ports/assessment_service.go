package ports

import (
	"context"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/scoring"
)

// SubmitAssessmentInput carries a finished questionnaire.
type SubmitAssessmentInput struct {
	UserID       string
	UserName     string
	SquadName    string
	ValueStream  string
	Answers      domain.AnswerMap
	Observations map[string]string
}

// PracticeScore is the computed average for one practice.
type PracticeScore struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Average int    `json:"average"`
	Level   string `json:"level"`
}

// CategoryScore is the computed average for one category with its practices.
type CategoryScore struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Average   int             `json:"average"`
	Level     string          `json:"level"`
	Practices []PracticeScore `json:"practices"`
}

// AssessmentSummary is the dashboard view of a single assessment.
type AssessmentSummary struct {
	Assessment  domain.Assessment             `json:"assessment"`
	Overall     int                           `json:"overall"`
	Level       string                        `json:"level"`
	Categories  []CategoryScore               `json:"categories"`
	LowMaturity []scoring.LowMaturityPractice `json:"lowMaturity"`
}

// AssessmentFilters lists the distinct squads and value streams across a
// user's assessments, for the history and dashboard filter dropdowns.
type AssessmentFilters struct {
	Squads       []string `json:"squads"`
	ValueStreams []string `json:"valueStreams"`
}

// ListAssessmentsInput filters a user's assessment history. IncludeAll
// widens the scope to every user's assessments; the handler only sets it for
// admins.
type ListAssessmentsInput struct {
	UserID      string
	IncludeAll  bool
	SquadName   string // empty or "all" = no filter
	ValueStream string // empty or "all" = no filter
}

// AssessmentService defines the questionnaire use cases. All operations are
// scoped to the requesting user.
type AssessmentService interface {
	Submit(ctx context.Context, input SubmitAssessmentInput) (*domain.Assessment, error)
	List(ctx context.Context, input ListAssessmentsInput) ([]domain.Assessment, error)
	Get(ctx context.Context, id, userID string) (*domain.Assessment, error)
	Delete(ctx context.Context, id, userID string) error
	Summary(ctx context.Context, id, userID string) (*AssessmentSummary, error)
	Filters(ctx context.Context, userID string) (*AssessmentFilters, error)

	Draft(ctx context.Context, userID string) (*domain.AssessmentDraft, error)
	SaveDraft(ctx context.Context, userID string, draft *domain.AssessmentDraft) error
	ClearDraft(ctx context.Context, userID string) error
}
