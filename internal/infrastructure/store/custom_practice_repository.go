package store

import (
	"context"
	"sync"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
)

// CustomPracticeRepository persists user-defined practices as a single
// document.
type CustomPracticeRepository struct {
	mu    sync.Mutex
	store Store
}

func NewCustomPracticeRepository(store Store) *CustomPracticeRepository {
	return &CustomPracticeRepository{store: store}
}

func (r *CustomPracticeRepository) List(ctx context.Context) ([]domain.CustomPractice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return loadCollection[domain.CustomPractice](ctx, r.store, KeyCustomPractices)
}

func (r *CustomPracticeRepository) Add(ctx context.Context, custom domain.CustomPractice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := loadCollection[domain.CustomPractice](ctx, r.store, KeyCustomPractices)
	if err != nil {
		return err
	}
	all = append(all, custom)
	return saveCollection(ctx, r.store, KeyCustomPractices, all)
}

func (r *CustomPracticeRepository) Remove(ctx context.Context, categoryID string, practiceID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := loadCollection[domain.CustomPractice](ctx, r.store, KeyCustomPractices)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].CategoryID == categoryID && all[i].Practice.ID == practiceID {
			all = append(all[:i], all[i+1:]...)
			return saveCollection(ctx, r.store, KeyCustomPractices, all)
		}
	}
	return domain.ErrPracticeNotFound
}
