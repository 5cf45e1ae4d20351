package domain

import "time"

// PlanStatus is the Kanban column of an action plan.
type PlanStatus string

const (
	PlanTodo       PlanStatus = "todo"
	PlanInProgress PlanStatus = "in-progress"
	PlanDone       PlanStatus = "done"
)

// ValidPlanStatus reports whether s is a known status.
func ValidPlanStatus(s PlanStatus) bool {
	return s == PlanTodo || s == PlanInProgress || s == PlanDone
}

// PlanPriority ranks the urgency of an action plan.
type PlanPriority string

const (
	PriorityLow    PlanPriority = "low"
	PriorityMedium PlanPriority = "medium"
	PriorityHigh   PlanPriority = "high"
)

// ValidPlanPriority reports whether p is a known priority.
func ValidPlanPriority(p PlanPriority) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ActionPlan is a remediation task tied to one low-scoring practice within
// one assessment. MaturityScore is a snapshot taken at creation time and is
// never recomputed against newer assessments.
type ActionPlan struct {
	ID            string       `json:"id"`
	UserID        string       `json:"userId"`
	UserName      string       `json:"userName"`
	AssessmentID  string       `json:"assessmentId"`
	PracticeID    string       `json:"practiceId"` // "categoryId-practiceId"
	CategoryName  string       `json:"categoryName"`
	PracticeName  string       `json:"practiceName"`
	MaturityScore int          `json:"maturityScore"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Responsible   string       `json:"responsible"`
	Priority      PlanPriority `json:"priority"`
	DueDate       *time.Time   `json:"dueDate,omitempty"`
	Status        PlanStatus   `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
