package searchcatalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tripkit/planner-api/internal/domain"
	"github.com/tripkit/planner-api/internal/ports/out/searchcatalog"
)

func TestCatalog_KeepsFixtureOrderAndDropsDuplicates(t *testing.T) {
	t.Parallel()

	c := NewCatalog(
		domain.SearchItem{ID: "s2", Name: "Second"},
		domain.SearchItem{ID: "s1", Name: "First"},
		domain.SearchItem{ID: "s2", Name: "Duplicate"},
	)
	got, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List() err=%v", err)
	}
	if len(got) != 2 || got[0].Name != "Second" || got[1].Name != "First" {
		t.Fatalf("got=%+v", got)
	}
}

func TestCatalog_GetByID(t *testing.T) {
	t.Parallel()

	orig := decimal.NewFromInt(300)
	c := NewCatalog(domain.SearchItem{ID: "s1", OriginalPrice: &orig})

	got, err := c.GetByID(context.Background(), "s1")
	if err != nil {
		t.Fatalf("GetByID() err=%v", err)
	}
	if got.OriginalPrice == nil || got.OriginalPrice == &orig || !got.OriginalPrice.Equal(orig) {
		t.Fatalf("OriginalPrice=%v, want an equal copy", got.OriginalPrice)
	}
	if _, err := c.GetByID(context.Background(), "nope"); !errors.Is(err, searchcatalog.ErrNotFound) {
		t.Fatalf("GetByID(nope) err=%v, want ErrNotFound", err)
	}
}
