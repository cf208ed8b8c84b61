package analyzer

import (
	"testing"
	"time"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

func TestCategoryBreakdown(t *testing.T) {
	visits := []tracker.Visit{
		visit("youtube.com", testNow.Add(-time.Hour), 600),
		visit("netflix.com", testNow.Add(-2*time.Hour), 300),
		visit("github.com", testNow.Add(-3*time.Hour), 100),
	}

	breakdown := CategoryBreakdown(visits)
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(breakdown))
	}

	ent := breakdown[tracker.CategoryEntertainment]
	if ent.Seconds != 900 {
		t.Errorf("Entertainment seconds = %d, want 900", ent.Seconds)
	}
	if ent.Percentage != 90 {
		t.Errorf("Entertainment percentage = %d, want 90", ent.Percentage)
	}

	dev := breakdown[tracker.CategoryDevelopment]
	if dev.Seconds != 100 || dev.Percentage != 10 {
		t.Errorf("Development = %+v, want 100s/10%%", dev)
	}
}

func TestCategoryBreakdown_UncategorizedFallback(t *testing.T) {
	v := visit("example.com", testNow, 100)
	v.Category = ""

	breakdown := CategoryBreakdown([]tracker.Visit{v})
	if share, ok := breakdown[tracker.CategoryUncategorized]; !ok || share.Seconds != 100 {
		t.Errorf("expected Uncategorized with 100s, got %+v", breakdown)
	}
}

func TestCategoryBreakdown_Empty(t *testing.T) {
	breakdown := CategoryBreakdown(nil)
	if len(breakdown) != 0 {
		t.Errorf("expected an empty breakdown, got %v", breakdown)
	}
}
