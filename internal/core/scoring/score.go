// Package scoring holds the pure maturity-aggregation engine: averages over
// sparse answer maps, maturity-band classification, low-maturity extraction,
// and assessment comparison. Nothing here touches a clock, a logger, or a
// repository; every function is total over the domain types.
package scoring

import (
	"math"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
)

// LowMaturityThreshold is the practice average below which a practice is
// considered low maturity and eligible for an action plan.
const LowMaturityThreshold = 70

// Maturity band labels, shared by every consumer.
const (
	LevelBasico            = "Básico"
	LevelEmDesenvolvimento = "Em Desenvolvimento"
	LevelIntermediario     = "Intermediário"
	LevelAvancado          = "Avançado"
	LevelExcelencia        = "Excelência"
)

// MaturityLevel classifies a 0-100 score into its maturity band.
func MaturityLevel(score int) string {
	switch {
	case score < 30:
		return LevelBasico
	case score < 50:
		return LevelEmDesenvolvimento
	case score < 70:
		return LevelIntermediario
	case score < 90:
		return LevelAvancado
	default:
		return LevelExcelencia
	}
}

// PracticeAverage is the rounded arithmetic mean of the answered questions of
// one practice. Unanswered questions are excluded from the mean; a practice
// with no answers averages 0.
func PracticeAverage(category domain.Category, practice domain.Practice, answers domain.AnswerMap) int {
	total, count := 0, 0
	for _, q := range practice.Questions {
		if score, ok := answers[domain.AnswerKey(category.ID, practice.ID, q.ID)]; ok {
			total += score
			count++
		}
	}
	return roundedMean(total, count)
}

// CategoryAverage flattens PracticeAverage's computation across every
// question of every practice in the category.
func CategoryAverage(category domain.Category, answers domain.AnswerMap) int {
	total, count := 0, 0
	for _, p := range category.Practices {
		for _, q := range p.Questions {
			if score, ok := answers[domain.AnswerKey(category.ID, p.ID, q.ID)]; ok {
				total += score
				count++
			}
		}
	}
	return roundedMean(total, count)
}

// OverallAverage is the rounded mean of every value in the raw answer map.
// Unlike the catalog-driven averages above it counts stray keys that no
// longer resolve to a catalog entry, e.g. answers left behind by a deleted
// custom practice. CatalogOverallAverage is the catalog-scoped counterpart.
func OverallAverage(answers domain.AnswerMap) int {
	total, count := 0, 0
	for _, score := range answers {
		total += score
		count++
	}
	return roundedMean(total, count)
}

// CatalogOverallAverage is the unrounded mean of the per-practice averages
// across the full catalog traversal. The comparison engine is defined over
// this value, not over OverallAverage.
func CatalogOverallAverage(catalog []domain.Category, answers domain.AnswerMap) float64 {
	total, count := 0, 0
	for _, c := range catalog {
		for _, p := range c.Practices {
			total += PracticeAverage(c, p, answers)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// roundedMean rounds half away from zero; scores are never negative so this
// matches round-half-up.
func roundedMean(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}
