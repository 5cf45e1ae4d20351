package ports

import (
	"context"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/scoring"
)

// ComparisonService computes the delta between two of a user's assessments,
// cross-referenced with the user's action plans.
type ComparisonService interface {
	Compare(ctx context.Context, userID, baseID, compareID string) (*scoring.Comparison, error)
}
