package expenserepo

import (
	"context"

	"github.com/tripkit/planner-api/internal/domain"
)

// Repository stores expenses, most recently created first.
type Repository interface {
	Create(ctx context.Context, e domain.Expense) error
	GetByID(ctx context.Context, id domain.ExpenseID) (domain.Expense, error)
	List(ctx context.Context) ([]domain.Expense, error)
	ListByTrip(ctx context.Context, tripID domain.TripID) ([]domain.Expense, error)
	Update(ctx context.Context, id domain.ExpenseID, fn func(*domain.Expense) error) (domain.Expense, error)
	Delete(ctx context.Context, id domain.ExpenseID) error
}
