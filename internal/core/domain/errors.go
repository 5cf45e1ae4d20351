package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrLastAdmin          = errors.New("cannot deactivate the last active admin")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
	ErrForbidden          = errors.New("access forbidden")

	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrSquadNameRequired  = errors.New("squad name is required")
	ErrInvalidScore       = errors.New("score must be between 0 and 100 in steps of 5")
	ErrSameAssessment     = errors.New("cannot compare an assessment with itself")

	ErrPlanNotFound     = errors.New("action plan not found")
	ErrPlanInvalid      = errors.New("invalid action plan")
	ErrCategoryNotFound = errors.New("category not found")
	ErrPracticeNotFound = errors.New("practice not found")
	ErrPracticeInvalid  = errors.New("practice needs a name and at least one question")
)
