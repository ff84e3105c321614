package searchcatalog

import (
	"context"

	"github.com/tripkit/planner-api/internal/domain"
	"github.com/tripkit/planner-api/internal/ports/out/searchcatalog"
)

// Catalog is a fixed, read-only in-memory catalog. It is safe for concurrent
// use because nothing mutates it after construction.
type Catalog struct {
	items []domain.SearchItem
	byID  map[domain.SearchItemID]int
}

func NewCatalog(items ...domain.SearchItem) *Catalog {
	c := &Catalog{
		items: make([]domain.SearchItem, 0, len(items)),
		byID:  make(map[domain.SearchItemID]int, len(items)),
	}
	for _, it := range items {
		if _, dup := c.byID[it.ID]; dup {
			continue
		}
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, cloneItem(it))
	}
	return c
}

func (c *Catalog) List(ctx context.Context) ([]domain.SearchItem, error) {
	_ = ctx
	out := make([]domain.SearchItem, len(c.items))
	for i, it := range c.items {
		out[i] = cloneItem(it)
	}
	return out, nil
}

func (c *Catalog) GetByID(ctx context.Context, id domain.SearchItemID) (domain.SearchItem, error) {
	_ = ctx
	i, ok := c.byID[id]
	if !ok {
		return domain.SearchItem{}, searchcatalog.ErrNotFound
	}
	return cloneItem(c.items[i]), nil
}

func cloneItem(it domain.SearchItem) domain.SearchItem {
	cp := it
	if it.OriginalPrice != nil {
		v := *it.OriginalPrice
		cp.OriginalPrice = &v
	}
	return cp
}
