package searchcatalog

import (
	"context"
	"errors"

	"github.com/tripkit/planner-api/internal/domain"
)

var ErrNotFound = errors.New("search item not found")

// Catalog is the read-only set of bookable offers.
// List returns items in relevance (fixture) order.
type Catalog interface {
	List(ctx context.Context) ([]domain.SearchItem, error)
	GetByID(ctx context.Context, id domain.SearchItemID) (domain.SearchItem, error)
}
