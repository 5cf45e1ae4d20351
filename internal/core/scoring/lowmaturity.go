package scoring

import "github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"

// QuestionScore is one question of a low-maturity practice with the score
// the user gave it. Unanswered questions surface here as an explicit 0 even
// though the average excludes them.
type QuestionScore struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// LowMaturityPractice is one practice whose average fell below the
// threshold, with the full per-question breakdown.
type LowMaturityPractice struct {
	ID            string          `json:"id"` // "categoryId-practiceId"
	CategoryID    string          `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
	PracticeID    int             `json:"practiceId"`
	PracticeName  string          `json:"practiceName"`
	MaturityScore int             `json:"maturityScore"`
	Questions     []QuestionScore `json:"questions"`
}

// ExtractLowMaturity scans the catalog against one assessment's answers and
// returns every practice averaging strictly below LowMaturityThreshold, in
// catalog traversal order. Each entry lists all of the practice's questions,
// not only the low-scoring ones.
func ExtractLowMaturity(catalog []domain.Category, answers domain.AnswerMap) []LowMaturityPractice {
	var items []LowMaturityPractice

	for _, category := range catalog {
		for _, practice := range category.Practices {
			average := PracticeAverage(category, practice, answers)
			if average >= LowMaturityThreshold {
				continue
			}

			questions := make([]QuestionScore, 0, len(practice.Questions))
			for _, q := range practice.Questions {
				questions = append(questions, QuestionScore{
					ID:    q.ID,
					Text:  q.Text,
					Score: answers[domain.AnswerKey(category.ID, practice.ID, q.ID)],
				})
			}

			items = append(items, LowMaturityPractice{
				ID:            domain.PracticeKey(category.ID, practice.ID),
				CategoryID:    category.ID,
				CategoryName:  category.Name,
				PracticeID:    practice.ID,
				PracticeName:  practice.Name,
				MaturityScore: average,
				Questions:     questions,
			})
		}
	}

	return items
}
