package store

import (
	"context"
	"sync"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
)

// ActionPlanRepository persists action plans as a single document.
type ActionPlanRepository struct {
	mu    sync.Mutex
	store Store
}

func NewActionPlanRepository(store Store) *ActionPlanRepository {
	return &ActionPlanRepository{store: store}
}

func (r *ActionPlanRepository) List(ctx context.Context) ([]domain.ActionPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return loadCollection[domain.ActionPlan](ctx, r.store, KeyActionPlans)
}

func (r *ActionPlanRepository) ListByUser(ctx context.Context, userID string) ([]domain.ActionPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := loadCollection[domain.ActionPlan](ctx, r.store, KeyActionPlans)
	if err != nil {
		return nil, err
	}
	owned := make([]domain.ActionPlan, 0, len(all))
	for _, p := range all {
		if p.UserID == userID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (r *ActionPlanRepository) FindByID(ctx context.Context, id string) (*domain.ActionPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := loadCollection[domain.ActionPlan](ctx, r.store, KeyActionPlans)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, domain.ErrPlanNotFound
}

func (r *ActionPlanRepository) Create(ctx context.Context, plan *domain.ActionPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := loadCollection[domain.ActionPlan](ctx, r.store, KeyActionPlans)
	if err != nil {
		return err
	}
	all = append(all, *plan)
	return saveCollection(ctx, r.store, KeyActionPlans, all)
}

func (r *ActionPlanRepository) Update(ctx context.Context, plan *domain.ActionPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := loadCollection[domain.ActionPlan](ctx, r.store, KeyActionPlans)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == plan.ID {
			all[i] = *plan
			return saveCollection(ctx, r.store, KeyActionPlans, all)
		}
	}
	return domain.ErrPlanNotFound
}

func (r *ActionPlanRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := loadCollection[domain.ActionPlan](ctx, r.store, KeyActionPlans)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == id {
			all = append(all[:i], all[i+1:]...)
			return saveCollection(ctx, r.store, KeyActionPlans, all)
		}
	}
	return domain.ErrPlanNotFound
}
