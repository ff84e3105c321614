package expenses

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/tripkit/planner-api/internal/app/apperr"
	"github.com/tripkit/planner-api/internal/domain"
	"github.com/tripkit/planner-api/internal/ports/out/latency"
	"github.com/tripkit/planner-api/internal/ports/out/triprepo"
)

var hundred = decimal.NewFromInt(100)

// Summarize computes the budget view of a trip from its stored expenses.
// Trip.Spent is not consulted.
func (s *Service) Summarize(ctx context.Context, tripID domain.TripID) (domain.BudgetSummary, error) {
	if err := s.latency.Wait(ctx, latency.OpList); err != nil {
		return domain.BudgetSummary{}, err
	}

	var (
		trip     domain.Trip
		expenses []domain.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.trips.GetByID(gctx, tripID)
		if err != nil {
			if errors.Is(err, triprepo.ErrNotFound) {
				return apperr.NotFound("TRIP_NOT_FOUND", "trip not found")
			}
			return err
		}
		trip = t
		return nil
	})
	g.Go(func() error {
		es, err := s.expenses.ListByTrip(gctx, tripID)
		if err != nil {
			return err
		}
		expenses = es
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.BudgetSummary{}, err
	}

	return Aggregate(trip, expenses), nil
}

// Aggregate is the pure aggregation behind Service.Summarize. Sums are exact;
// only the percentage is subject to decimal division precision. Categories are
// reported in display order, including those with no expenses.
func Aggregate(trip domain.Trip, expenses []domain.Expense) domain.BudgetSummary {
	byCat := make(map[domain.ExpenseCategory]*domain.CategoryTotal)
	cats := domain.ExpenseCategories()
	out := domain.BudgetSummary{
		TripID:     trip.ID,
		Budget:     trip.Budget,
		Currency:   trip.Currency,
		TotalSpent: decimal.Zero,
		ByCategory: make([]domain.CategoryTotal, len(cats)),
	}
	for i, c := range cats {
		out.ByCategory[i] = domain.CategoryTotal{Category: c, Total: decimal.Zero}
		byCat[c] = &out.ByCategory[i]
	}

	for _, e := range expenses {
		out.TotalSpent = out.TotalSpent.Add(e.Amount)
		ct, ok := byCat[e.Category]
		if !ok {
			ct = byCat[domain.ExpenseCategoryOther]
		}
		ct.Total = ct.Total.Add(e.Amount)
		ct.Count++
	}

	out.Remaining = trip.Budget.Sub(out.TotalSpent)
	out.PercentSpent = decimal.Zero
	if trip.Budget.IsPositive() {
		out.PercentSpent = out.TotalSpent.Mul(hundred).Div(trip.Budget)
	}
	return out
}
