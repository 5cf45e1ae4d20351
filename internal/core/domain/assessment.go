package domain

import "time"

// AnswerMap maps composite answer keys ("categoryId-practiceId-questionId")
// to scores in [0,100], step 5. Sparse: absent entries are excluded from
// averages, not treated as zero.
type AnswerMap map[string]int

// ScoreStep is the granularity of a single answer.
const ScoreStep = 5

// ValidScore reports whether a score is within range and on the step grid.
func ValidScore(score int) bool {
	return score >= 0 && score <= 100 && score%ScoreStep == 0
}

// Assessment is one completed questionnaire run. Immutable once created
// except for deletion. Identity is the submission timestamp.
type Assessment struct {
	ID           string            `json:"id"`
	UserID       string            `json:"userId"`
	UserName     string            `json:"userName"`
	SquadName    string            `json:"squadName"`
	ValueStream  string            `json:"valueStream,omitempty"`
	Answers      AnswerMap         `json:"answers"`
	Observations map[string]string `json:"observations,omitempty"`
	Date         time.Time         `json:"date"`
}

// AssessmentDraft is the in-progress questionnaire state saved per user
// between sessions, observations keyed by practice key.
type AssessmentDraft struct {
	SquadName    string            `json:"squadName"`
	ValueStream  string            `json:"valueStream,omitempty"`
	Answers      AnswerMap         `json:"answers"`
	Observations map[string]string `json:"observations,omitempty"`
}
