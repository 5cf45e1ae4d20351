package store

import (
	"context"
	"sync"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
)

// AssessmentRepository persists completed assessments as a single document.
type AssessmentRepository struct {
	mu    sync.Mutex
	store Store
}

func NewAssessmentRepository(store Store) *AssessmentRepository {
	return &AssessmentRepository{store: store}
}

func (r *AssessmentRepository) List(ctx context.Context) ([]domain.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return loadCollection[domain.Assessment](ctx, r.store, KeyAssessments)
}

func (r *AssessmentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := loadCollection[domain.Assessment](ctx, r.store, KeyAssessments)
	if err != nil {
		return nil, err
	}
	owned := make([]domain.Assessment, 0, len(all))
	for _, a := range all {
		if a.UserID == userID {
			owned = append(owned, a)
		}
	}
	return owned, nil
}

func (r *AssessmentRepository) FindByID(ctx context.Context, id string) (*domain.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := loadCollection[domain.Assessment](ctx, r.store, KeyAssessments)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, domain.ErrAssessmentNotFound
}

func (r *AssessmentRepository) Create(ctx context.Context, assessment *domain.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := loadCollection[domain.Assessment](ctx, r.store, KeyAssessments)
	if err != nil {
		return err
	}
	all = append(all, *assessment)
	return saveCollection(ctx, r.store, KeyAssessments, all)
}

func (r *AssessmentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := loadCollection[domain.Assessment](ctx, r.store, KeyAssessments)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == id {
			all = append(all[:i], all[i+1:]...)
			return saveCollection(ctx, r.store, KeyAssessments, all)
		}
	}
	return domain.ErrAssessmentNotFound
}
