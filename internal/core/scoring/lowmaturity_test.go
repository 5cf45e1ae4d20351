package scoring

import (
	"testing"

	"github.com/ievolvetecnologia/maturidadeqa/internal/core/domain"
)

func TestExtractLowMaturity_ThresholdBoundaries(t *testing.T) {
	catalog := testCatalog()
	answers := domain.AnswerMap{
		// practice cat-a-1 averages exactly 69 → included
		"cat-a-1-1": 68,
		"cat-a-1-2": 70,
		// practice cat-a-2 averages exactly 70 → excluded
		"cat-a-2-1": 70,
		"cat-a-2-2": 70,
		// practice cat-b-3 averages 90 → excluded
		"cat-b-3-1": 90,
		"cat-b-3-2": 90,
	}

	items := ExtractLowMaturity(catalog, answers)
	if len(items) != 1 {
		t.Fatalf("expected 1 low-maturity practice, got %d", len(items))
	}
	if items[0].ID != "cat-a-1" || items[0].MaturityScore != 69 {
		t.Fatalf("unexpected item: %+v", items[0])
	}
}

func TestExtractLowMaturity_QuestionBreakdown(t *testing.T) {
	catalog := testCatalog()
	answers := domain.AnswerMap{
		"cat-a-1-1": 80,
		"cat-a-1-2": 40,
	}

	items := ExtractLowMaturity(catalog, answers)

	// 80/40 averages 60, which is below the threshold.
	var found *LowMaturityPractice
	for i := range items {
		if items[i].ID == "cat-a-1" {
			found = &items[i]
		}
	}
	if found == nil {
		t.Fatalf("practice cat-a-1 missing from low-maturity list")
	}
	if found.MaturityScore != 60 {
		t.Fatalf("expected score 60, got %d", found.MaturityScore)
	}
	if len(found.Questions) != 2 {
		t.Fatalf("expected both questions listed, got %d", len(found.Questions))
	}
	if found.Questions[0].Score != 80 || found.Questions[1].Score != 40 {
		t.Fatalf("question scores not listed verbatim: %+v", found.Questions)
	}
}

func TestExtractLowMaturity_UnansweredQuestionsShownAsZero(t *testing.T) {
	catalog := testCatalog()
	answers := domain.AnswerMap{"cat-a-1-1": 50}

	items := ExtractLowMaturity(catalog, answers)
	if len(items) == 0 {
		t.Fatalf("expected low-maturity practices")
	}
	first := items[0]
	if first.MaturityScore != 50 {
		t.Fatalf("average must exclude unanswered questions, got %d", first.MaturityScore)
	}
	if first.Questions[1].Score != 0 {
		t.Fatalf("unanswered question must surface as 0, got %d", first.Questions[1].Score)
	}
}

func TestExtractLowMaturity_CatalogOrder(t *testing.T) {
	catalog := testCatalog()

	// All practices unanswered → all average 0 → all listed, in catalog order
	// rather than sorted by score.
	items := ExtractLowMaturity(catalog, domain.AnswerMap{})
	if len(items) != 3 {
		t.Fatalf("expected 3 practices, got %d", len(items))
	}
	want := []string{"cat-a-1", "cat-a-2", "cat-b-3"}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, items[i].ID)
		}
	}
}
