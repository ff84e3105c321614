package search

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/tripkit/planner-api/internal/app/apperr"
	"github.com/tripkit/planner-api/internal/domain"
	"github.com/tripkit/planner-api/internal/ports/out/clock"
	"github.com/tripkit/planner-api/internal/ports/out/latency"
	"github.com/tripkit/planner-api/internal/ports/out/searchcatalog"
)

const recommendationLimit = 6

type Service struct {
	catalog searchcatalog.Catalog
	clock   clock.Clock
	latency latency.Simulator

	newBookingID func() domain.BookingID
}

func NewService(catalog searchcatalog.Catalog, clk clock.Clock, lat latency.Simulator) *Service {
	return &Service{
		catalog: catalog,
		clock:   clk,
		latency: lat,
		newBookingID: func() domain.BookingID {
			return domain.BookingID("booking_" + uuid.NewString())
		},
	}
}

// SetNewBookingIDForTest overrides booking ID generation for deterministic tests.
func (s *Service) SetNewBookingIDForTest(fn func() domain.BookingID) {
	if fn != nil {
		s.newBookingID = fn
	}
}

// Search filters by case-insensitive substring over name, description and
// location, then by type, then sorts. Relevance keeps catalog order and every
// sort is stable.
func (s *Service) Search(ctx context.Context, q Query) ([]domain.SearchItem, error) {
	if q.Type == "" {
		q.Type = domain.SearchTypeAll
	}
	if q.SortBy == "" {
		q.SortBy = domain.SortByRelevance
	}
	if !q.Type.Valid() {
		return nil, apperr.Field("type", "must be one of all, flights, hotels, activities, restaurants")
	}
	if !q.SortBy.Valid() {
		return nil, apperr.Field("sortBy", "must be one of relevance, price-low, price-high, rating, distance")
	}

	if err := s.latency.Wait(ctx, latency.OpSearch); err != nil {
		return nil, err
	}
	items, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(q.Text))
	out := items[:0]
	for _, it := range items {
		if needle != "" && !matches(it, needle) {
			continue
		}
		if q.Type != domain.SearchTypeAll && it.Type != q.Type {
			continue
		}
		out = append(out, it)
	}

	switch q.SortBy {
	case domain.SortByPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case domain.SortByPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	case domain.SortByRating:
		sortByRating(out)
	case domain.SortByDistance:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	}
	return out, nil
}

// Recommendations returns the six best rated items, optionally of one type.
func (s *Service) Recommendations(ctx context.Context, in RecommendationInput) ([]domain.SearchItem, error) {
	if in.Type != "" && !in.Type.Valid() {
		return nil, apperr.Field("type", "must be one of all, flights, hotels, activities, restaurants")
	}
	if err := s.latency.Wait(ctx, latency.OpList); err != nil {
		return nil, err
	}
	items, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	out := items[:0]
	for _, it := range items {
		if in.Type == "" || in.Type == domain.SearchTypeAll || it.Type == in.Type {
			out = append(out, it)
		}
	}
	sortByRating(out)
	if len(out) > recommendationLimit {
		out = out[:recommendationLimit]
	}
	return out, nil
}

// Book confirms a booking for a catalog item. Nothing is reserved.
func (s *Service) Book(ctx context.Context, itemID domain.SearchItemID) (domain.Booking, error) {
	if err := s.latency.Wait(ctx, latency.OpBook); err != nil {
		return domain.Booking{}, err
	}
	if _, err := s.catalog.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, searchcatalog.ErrNotFound) {
			return domain.Booking{}, apperr.NotFound("ITEM_NOT_FOUND", "item not found")
		}
		return domain.Booking{}, err
	}
	return domain.Booking{
		ID:          s.newBookingID(),
		ItemID:      itemID,
		Status:      domain.BookingStatusConfirmed,
		BookingDate: s.clock.Now(),
	}, nil
}

func matches(it domain.SearchItem, needle string) bool {
	return strings.Contains(strings.ToLower(it.Name), needle) ||
		strings.Contains(strings.ToLower(it.Description), needle) ||
		strings.Contains(strings.ToLower(it.Location), needle)
}

func sortByRating(items []domain.SearchItem) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
}
