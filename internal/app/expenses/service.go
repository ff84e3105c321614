package expenses

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tripkit/planner-api/internal/app/apperr"
	"github.com/tripkit/planner-api/internal/domain"
	"github.com/tripkit/planner-api/internal/ports/out/clock"
	"github.com/tripkit/planner-api/internal/ports/out/expenserepo"
	"github.com/tripkit/planner-api/internal/ports/out/latency"
	"github.com/tripkit/planner-api/internal/ports/out/triprepo"
)

type Service struct {
	expenses expenserepo.Repository
	trips    triprepo.Repository
	clock    clock.Clock
	latency  latency.Simulator

	newExpenseID func() domain.ExpenseID
}

func NewService(expensesRepo expenserepo.Repository, tripsRepo triprepo.Repository, clk clock.Clock, lat latency.Simulator) *Service {
	return &Service{
		expenses: expensesRepo,
		trips:    tripsRepo,
		clock:    clk,
		latency:  lat,
		newExpenseID: func() domain.ExpenseID {
			return domain.ExpenseID("expense_" + uuid.NewString())
		},
	}
}

// SetNewExpenseIDForTest overrides expense ID generation for deterministic tests.
func (s *Service) SetNewExpenseIDForTest(fn func() domain.ExpenseID) {
	if fn != nil {
		s.newExpenseID = fn
	}
}

func expenseNotFound() *apperr.Error {
	return apperr.NotFound("EXPENSE_NOT_FOUND", "expense not found")
}

func (s *Service) List(ctx context.Context) ([]domain.Expense, error) {
	if err := s.latency.Wait(ctx, latency.OpList); err != nil {
		return nil, err
	}
	return s.expenses.List(ctx)
}

func (s *Service) ListByTripID(ctx context.Context, tripID domain.TripID) ([]domain.Expense, error) {
	if err := s.latency.Wait(ctx, latency.OpList); err != nil {
		return nil, err
	}
	return s.expenses.ListByTrip(ctx, tripID)
}

func (s *Service) GetByID(ctx context.Context, id domain.ExpenseID) (domain.Expense, error) {
	if err := s.latency.Wait(ctx, latency.OpGet); err != nil {
		return domain.Expense{}, err
	}
	e, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, expenserepo.ErrNotFound) {
			return domain.Expense{}, expenseNotFound()
		}
		return domain.Expense{}, err
	}
	return e, nil
}

// Create records an expense. Amounts are stored exactly as given.
func (s *Service) Create(ctx context.Context, in CreateExpenseInput) (domain.Expense, error) {
	if err := s.latency.Wait(ctx, latency.OpCreate); err != nil {
		return domain.Expense{}, err
	}

	now := s.clock.Now()
	e := domain.Expense{
		ID:          s.newExpenseID(),
		TripID:      in.TripID,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
		PaidBy:      domain.Payer{ID: domain.CurrentUser.ID, Name: domain.CurrentUser.Name},
		SplitWith:   append([]domain.UserID(nil), in.SplitWith...),
		CreatedAt:   now,
	}
	if in.PaidBy != nil {
		e.PaidBy = *in.PaidBy
	}
	if e.Date.IsZero() {
		e.Date = dateOnly(now)
	}
	if in.TripID == "" {
		return domain.Expense{}, apperr.Field("tripId", "is required")
	}
	if err := validateExpense(e); err != nil {
		return domain.Expense{}, err
	}

	if err := s.expenses.Create(ctx, e); err != nil {
		if errors.Is(err, expenserepo.ErrAlreadyExists) {
			return domain.Expense{}, apperr.Conflict("EXPENSE_ID_CONFLICT", "expense id conflict")
		}
		return domain.Expense{}, err
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, id domain.ExpenseID, in UpdateExpenseInput) (domain.Expense, error) {
	if err := s.latency.Wait(ctx, latency.OpUpdate); err != nil {
		return domain.Expense{}, err
	}

	e, err := s.expenses.Update(ctx, id, func(e *domain.Expense) error {
		if in.Amount.IsSpecified() {
			if in.Amount.IsNull() {
				return apperr.Field("amount", "cannot be null")
			}
			e.Amount = in.Amount.Value()
		}
		if in.Category.IsSpecified() {
			if in.Category.IsNull() {
				return apperr.Field("category", "cannot be null")
			}
			e.Category = in.Category.Value()
		}
		if in.Description.IsSpecified() {
			e.Description = in.Description.Value()
		}
		if in.Date.IsSpecified() {
			if in.Date.IsNull() {
				return apperr.Field("date", "cannot be null")
			}
			e.Date = in.Date.Value()
		}
		if in.PaidBy.IsSpecified() {
			if in.PaidBy.IsNull() {
				return apperr.Field("paidBy", "cannot be null")
			}
			e.PaidBy = in.PaidBy.Value()
		}
		if in.SplitWith.IsSpecified() {
			e.SplitWith = append([]domain.UserID(nil), in.SplitWith.Value()...)
		}
		return validateExpense(*e)
	})
	if err != nil {
		if errors.Is(err, expenserepo.ErrNotFound) {
			return domain.Expense{}, expenseNotFound()
		}
		return domain.Expense{}, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id domain.ExpenseID) error {
	if err := s.latency.Wait(ctx, latency.OpDelete); err != nil {
		return err
	}
	if err := s.expenses.Delete(ctx, id); err != nil {
		if errors.Is(err, expenserepo.ErrNotFound) {
			return expenseNotFound()
		}
		return err
	}
	return nil
}

func validateExpense(e domain.Expense) error {
	if !e.Amount.IsPositive() {
		return apperr.Field("amount", "must be > 0")
	}
	if !e.Category.Valid() {
		return apperr.Field("category", "must be one of flights, accommodation, dining, activities, transport, shopping, other")
	}
	if e.PaidBy.ID == "" {
		return apperr.Field("paidBy", "must name a payer")
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
