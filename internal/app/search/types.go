package search

import "github.com/tripkit/planner-api/internal/domain"

// Query filters and orders the catalog. Zero values mean "all" and "relevance".
type Query struct {
	Text   string
	Type   domain.SearchType
	SortBy domain.SortBy
}

type RecommendationInput struct {
	Type domain.SearchType // empty or all means no filter
}
