// Package store persists every collection as a JSON document under a fixed
// key, mirroring the single-document-per-collection layout of the browser
// prototype this service replaced. Two backends exist: an in-process map for
// development and tests, and Redis for anything shared.
package store

import (
	"context"
	"errors"
	"time"
)

// Collection keys. One JSON document per collection.
const (
	KeyUsers           = "sqm-users"
	KeyAssessments     = "sqm-assessments"
	KeyActionPlans     = "sqm-action-plans"
	KeyCustomPractices = "sqm-custom-questions"

	// Per-user keys take a suffix.
	KeyDraftPrefix   = "sqm-assessment-progress-"
	KeySessionPrefix = "sqm-current-user:"
)

// ErrKeyNotFound is returned by Get for absent or expired keys.
var ErrKeyNotFound = errors.New("store: key not found")

// Store is a flat key-value document store. Set with ttl zero persists
// without expiry.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
	// Ping validates connectivity for readiness checks.
	Ping(ctx context.Context) error
}
