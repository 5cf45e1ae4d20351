package ports

import (
	"context"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
)

// CatalogService merges the static question catalog with persisted custom
// practices and manages the latter.
type CatalogService interface {
	// Catalog returns the merged catalog. Custom practices keep their stored
	// id when set, otherwise they are remapped to the next free id in their
	// category.
	Catalog(ctx context.Context) ([]domain.Category, error)
	SaveCustomPractice(ctx context.Context, categoryID string, practice domain.Practice) (*domain.Practice, error)
	DeleteCustomPractice(ctx context.Context, categoryID string, practiceID int) error
	IsCustomPractice(ctx context.Context, categoryID string, practiceID int) (bool, error)
}
