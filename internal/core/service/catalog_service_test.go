package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
)

type stubCustomRepo struct {
	customs []domain.CustomPractice
}

func (r *stubCustomRepo) List(_ context.Context) ([]domain.CustomPractice, error) {
	out := make([]domain.CustomPractice, len(r.customs))
	copy(out, r.customs)
	return out, nil
}

func (r *stubCustomRepo) Add(_ context.Context, custom domain.CustomPractice) error {
	r.customs = append(r.customs, custom)
	return nil
}

func (r *stubCustomRepo) Remove(_ context.Context, categoryID string, practiceID int) error {
	kept := r.customs[:0]
	for _, c := range r.customs {
		if !(c.CategoryID == categoryID && c.Practice.ID == practiceID) {
			kept = append(kept, c)
		}
	}
	r.customs = kept
	return nil
}

func TestCatalogService_Catalog_MergesCustomPractices(t *testing.T) {
	repo := &stubCustomRepo{customs: []domain.CustomPractice{
		{
			CategoryID: "desenvolvimento",
			Practice: domain.Practice{
				ID:        1718000000000,
				Name:      "Documentação Viva",
				Questions: []domain.Question{{ID: 1, Text: "Mantém documentação gerada do código?"}},
			},
		},
	}}
	svc := NewCatalogService(repo, discardLogger)

	catalog, err := svc.Catalog(context.Background())
	if err != nil {
		t.Fatalf("Catalog returned error: %v", err)
	}

	var dev *domain.Category
	for i := range catalog {
		if catalog[i].ID == "desenvolvimento" {
			dev = &catalog[i]
		}
	}
	if dev == nil {
		t.Fatalf("desenvolvimento category missing")
	}
	if len(dev.Practices) != 3 {
		t.Fatalf("expected 3 practices after merge, got %d", len(dev.Practices))
	}
	merged := dev.Practices[2]
	if merged.ID != 1718000000000 || merged.Name != "Documentação Viva" {
		t.Fatalf("stored practice id/name must be preserved: %+v", merged)
	}
}

func TestCatalogService_Catalog_RemapsZeroID(t *testing.T) {
	repo := &stubCustomRepo{customs: []domain.CustomPractice{
		{
			CategoryID: "seguranca",
			Practice: domain.Practice{
				Name:      "Threat Modeling",
				Questions: []domain.Question{{ID: 1, Text: "Modela ameaças por release?"}},
			},
		},
	}}
	svc := NewCatalogService(repo, discardLogger)

	catalog, err := svc.Catalog(context.Background())
	if err != nil {
		t.Fatalf("Catalog returned error: %v", err)
	}

	for _, c := range catalog {
		if c.ID != "seguranca" {
			continue
		}
		// Default practices are 9 and 10, so the next free id is 11.
		if got := c.Practices[len(c.Practices)-1].ID; got != 11 {
			t.Fatalf("expected remapped id 11, got %d", got)
		}
	}
}

func TestCatalogService_Catalog_SkipsUnknownCategory(t *testing.T) {
	repo := &stubCustomRepo{customs: []domain.CustomPractice{
		{CategoryID: "nope", Practice: domain.Practice{ID: 1, Name: "X", Questions: []domain.Question{{ID: 1, Text: "q"}}}},
	}}
	svc := NewCatalogService(repo, discardLogger)

	catalog, err := svc.Catalog(context.Background())
	if err != nil {
		t.Fatalf("Catalog returned error: %v", err)
	}
	for _, c := range catalog {
		for _, p := range c.Practices {
			if p.Name == "X" {
				t.Fatalf("practice for unknown category must be skipped")
			}
		}
	}
}

func TestCatalogService_SaveCustomPractice(t *testing.T) {
	repo := &stubCustomRepo{}
	svc := NewCatalogService(repo, discardLogger)
	svc.now = func() time.Time { return time.UnixMilli(1718000000123) }

	saved, err := svc.SaveCustomPractice(context.Background(), "desenvolvimento", domain.Practice{
		Name:      "Pair Programming",
		Questions: []domain.Question{{Text: "Pratica pareamento nas tarefas críticas?"}, {Text: "Roda sessões de mob review?"}},
	})
	if err != nil {
		t.Fatalf("SaveCustomPractice returned error: %v", err)
	}
	if saved.ID != 1718000000123 {
		t.Fatalf("expected timestamp-derived id, got %d", saved.ID)
	}
	if saved.Questions[0].ID != 1 || saved.Questions[1].ID != 2 {
		t.Fatalf("question ids must be sequential: %+v", saved.Questions)
	}
	if len(repo.customs) != 1 {
		t.Fatalf("practice not persisted")
	}
}

func TestCatalogService_SaveCustomPractice_Validation(t *testing.T) {
	svc := NewCatalogService(&stubCustomRepo{}, discardLogger)

	if _, err := svc.SaveCustomPractice(context.Background(), "desenvolvimento", domain.Practice{Name: ""}); !errors.Is(err, domain.ErrPracticeInvalid) {
		t.Fatalf("expected ErrPracticeInvalid for empty practice, got %v", err)
	}
	if _, err := svc.SaveCustomPractice(context.Background(), "unknown", domain.Practice{
		Name: "P", Questions: []domain.Question{{Text: "q"}},
	}); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCatalogService_DeleteCustomPractice(t *testing.T) {
	repo := &stubCustomRepo{customs: []domain.CustomPractice{
		{CategoryID: "seguranca", Practice: domain.Practice{ID: 42, Name: "C", Questions: []domain.Question{{ID: 1, Text: "q"}}}},
	}}
	svc := NewCatalogService(repo, discardLogger)

	// Default practices cannot be deleted.
	if err := svc.DeleteCustomPractice(context.Background(), "seguranca", 9); !errors.Is(err, domain.ErrPracticeNotFound) {
		t.Fatalf("expected ErrPracticeNotFound for default practice, got %v", err)
	}

	if err := svc.DeleteCustomPractice(context.Background(), "seguranca", 42); err != nil {
		t.Fatalf("DeleteCustomPractice returned error: %v", err)
	}
	if len(repo.customs) != 0 {
		t.Fatalf("custom practice not removed")
	}
}

func TestCatalogService_IsCustomPractice(t *testing.T) {
	repo := &stubCustomRepo{customs: []domain.CustomPractice{
		{CategoryID: "seguranca", Practice: domain.Practice{ID: 42, Name: "C", Questions: []domain.Question{{ID: 1, Text: "q"}}}},
	}}
	svc := NewCatalogService(repo, discardLogger)

	if custom, _ := svc.IsCustomPractice(context.Background(), "seguranca", 9); custom {
		t.Fatalf("default practice reported as custom")
	}
	if custom, _ := svc.IsCustomPractice(context.Background(), "seguranca", 42); !custom {
		t.Fatalf("custom practice not recognised")
	}
}
