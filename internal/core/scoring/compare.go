package scoring

import (
	"math"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
)

// Change labels for a per-practice score delta.
const (
	ChangeStrongImprovement = "Melhoria Significativa"
	ChangeImprovement       = "Melhoria"
	ChangeNone              = "Sem Alteração"
	ChangeDecline           = "Queda"
	ChangeStrongDecline     = "Queda Significativa"
)

// ClassifyChange labels a per-practice difference (compare minus base).
func ClassifyChange(difference int) string {
	switch {
	case difference > 10:
		return ChangeStrongImprovement
	case difference > 0:
		return ChangeImprovement
	case difference < -10:
		return ChangeStrongDecline
	case difference < 0:
		return ChangeDecline
	default:
		return ChangeNone
	}
}

// PracticeComparison is the delta for one practice between two assessments,
// cross-referenced with the action plans targeting that practice.
type PracticeComparison struct {
	ID                int                 `json:"id"`
	Name              string              `json:"name"`
	BaseScore         int                 `json:"baseScore"`
	CompareScore      int                 `json:"compareScore"`
	Difference        int                 `json:"difference"`
	Change            string              `json:"change"`
	RelatedPlans      []domain.ActionPlan `json:"relatedPlans"`
	HasCompletedPlans bool                `json:"hasCompletedPlans"`
}

// CategoryComparison groups per-practice deltas by category.
type CategoryComparison struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Practices []PracticeComparison `json:"practices"`
}

// Comparison is the full result of comparing two assessments.
type Comparison struct {
	Categories   []CategoryComparison `json:"categories"`
	OverallDelta int                  `json:"overallDelta"`
}

// Compare walks the catalog and computes per-practice deltas between a base
// and a compare answer map. The overall delta is the rounded difference of
// the catalog-scoped means of per-practice averages, which deliberately
// differs from subtracting two OverallAverage calls. Completed-plan flags
// only annotate the result; they never affect the numbers.
func Compare(catalog []domain.Category, base, compare domain.AnswerMap, plans []domain.ActionPlan) Comparison {
	result := Comparison{Categories: make([]CategoryComparison, 0, len(catalog))}

	totalBase, totalCompare, totalPractices := 0, 0, 0

	for _, category := range catalog {
		cc := CategoryComparison{
			ID:        category.ID,
			Name:      category.Name,
			Practices: make([]PracticeComparison, 0, len(category.Practices)),
		}

		for _, practice := range category.Practices {
			baseAverage := PracticeAverage(category, practice, base)
			compareAverage := PracticeAverage(category, practice, compare)
			difference := compareAverage - baseAverage

			related := relatedPlans(plans, domain.PracticeKey(category.ID, practice.ID))

			cc.Practices = append(cc.Practices, PracticeComparison{
				ID:                practice.ID,
				Name:              practice.Name,
				BaseScore:         baseAverage,
				CompareScore:      compareAverage,
				Difference:        difference,
				Change:            ClassifyChange(difference),
				RelatedPlans:      related,
				HasCompletedPlans: anyDone(related),
			})

			totalBase += baseAverage
			totalCompare += compareAverage
			totalPractices++
		}

		result.Categories = append(result.Categories, cc)
	}

	if totalPractices > 0 {
		baseOverall := float64(totalBase) / float64(totalPractices)
		compareOverall := float64(totalCompare) / float64(totalPractices)
		result.OverallDelta = int(math.Round(compareOverall - baseOverall))
	}

	return result
}

func relatedPlans(plans []domain.ActionPlan, practiceKey string) []domain.ActionPlan {
	related := make([]domain.ActionPlan, 0)
	for _, p := range plans {
		if p.PracticeID == practiceKey {
			related = append(related, p)
		}
	}
	return related
}

func anyDone(plans []domain.ActionPlan) bool {
	for _, p := range plans {
		if p.Status == domain.PlanDone {
			return true
		}
	}
	return false
}
