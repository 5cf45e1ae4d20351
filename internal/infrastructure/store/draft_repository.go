package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
)

// DraftRepository persists one in-progress questionnaire per user.
type DraftRepository struct {
	store Store
}

func NewDraftRepository(store Store) *DraftRepository {
	return &DraftRepository{store: store}
}

func (r *DraftRepository) Get(ctx context.Context, userID string) (*domain.AssessmentDraft, error) {
	raw, err := r.store.Get(ctx, KeyDraftPrefix+userID)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, domain.ErrAssessmentNotFound
		}
		return nil, err
	}

	var draft domain.AssessmentDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &draft, nil
}

func (r *DraftRepository) Put(ctx context.Context, userID string, draft *domain.AssessmentDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return r.store.Set(ctx, KeyDraftPrefix+userID, raw, 0)
}

func (r *DraftRepository) Clear(ctx context.Context, userID string) error {
	return r.store.Remove(ctx, KeyDraftPrefix+userID)
}
