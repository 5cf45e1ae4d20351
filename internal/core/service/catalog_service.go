package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/ports"
)

// CatalogService merges persisted custom practices into the static catalog.
type CatalogService struct {
	customs ports.CustomPracticeRepository
	logger  zerolog.Logger
	now     func() time.Time
}

func NewCatalogService(customs ports.CustomPracticeRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{customs: customs, logger: logger, now: time.Now}
}

// Catalog returns the default catalog with every custom practice appended to
// its category. A stored practice id is kept when set; a zero id is remapped
// to the highest id in the category plus one. Customs pointing at an unknown
// category are skipped.
func (s *CatalogService) Catalog(ctx context.Context) ([]domain.Category, error) {
	catalog := domain.DefaultCatalog()

	customs, err := s.customs.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(customs) == 0 {
		return catalog, nil
	}

	for _, custom := range customs {
		idx := categoryIndex(catalog, custom.CategoryID)
		if idx < 0 {
			s.logger.Warn().Str("category_id", custom.CategoryID).Msg("custom practice references unknown category")
			continue
		}

		practice := custom.Practice
		if practice.ID == 0 {
			practice.ID = maxPracticeID(catalog[idx].Practices) + 1
		}
		catalog[idx].Practices = append(catalog[idx].Practices, practice)
	}

	return catalog, nil
}

// SaveCustomPractice validates and persists a user-defined practice.
// The practice id is derived from the wall clock in milliseconds; question
// ids default to their position. Rapid successive additions can collide on
// the same millisecond; the merge-time remapping does not repair that.
func (s *CatalogService) SaveCustomPractice(ctx context.Context, categoryID string, practice domain.Practice) (*domain.Practice, error) {
	if strings.TrimSpace(practice.Name) == "" || len(practice.Questions) == 0 {
		return nil, domain.ErrPracticeInvalid
	}
	for _, q := range practice.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return nil, domain.ErrPracticeInvalid
		}
	}
	if categoryIndex(domain.DefaultCatalog(), categoryID) < 0 {
		return nil, domain.ErrCategoryNotFound
	}

	if practice.ID == 0 {
		practice.ID = int(s.now().UnixMilli())
	}
	for i := range practice.Questions {
		if practice.Questions[i].ID == 0 {
			practice.Questions[i].ID = i + 1
		}
	}

	if err := s.customs.Add(ctx, domain.CustomPractice{CategoryID: categoryID, Practice: practice}); err != nil {
		return nil, err
	}

	s.logger.Info().Str("category_id", categoryID).Int("practice_id", practice.ID).Str("name", practice.Name).Msg("custom practice saved")
	return &practice, nil
}

// DeleteCustomPractice removes a custom practice. Practices from the default
// catalog cannot be deleted.
func (s *CatalogService) DeleteCustomPractice(ctx context.Context, categoryID string, practiceID int) error {
	custom, err := s.IsCustomPractice(ctx, categoryID, practiceID)
	if err != nil {
		return err
	}
	if !custom {
		return domain.ErrPracticeNotFound
	}
	return s.customs.Remove(ctx, categoryID, practiceID)
}

// IsCustomPractice reports whether the practice is user-defined rather than
// part of the default catalog.
func (s *CatalogService) IsCustomPractice(ctx context.Context, categoryID string, practiceID int) (bool, error) {
	if idx := categoryIndex(domain.DefaultCatalog(), categoryID); idx >= 0 {
		for _, p := range domain.DefaultCatalog()[idx].Practices {
			if p.ID == practiceID {
				return false, nil
			}
		}
	}

	customs, err := s.customs.List(ctx)
	if err != nil {
		return false, err
	}
	for _, c := range customs {
		if c.CategoryID == categoryID && c.Practice.ID == practiceID {
			return true, nil
		}
	}
	return false, nil
}

func categoryIndex(catalog []domain.Category, categoryID string) int {
	for i, c := range catalog {
		if c.ID == categoryID {
			return i
		}
	}
	return -1
}

func maxPracticeID(practices []domain.Practice) int {
	max := 0
	for _, p := range practices {
		if p.ID > max {
			max = p.ID
		}
	}
	return max
}
