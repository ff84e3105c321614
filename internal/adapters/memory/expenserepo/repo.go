package expenserepo

import (
	"context"

	"github.com/tripkit/planner-api/internal/adapters/memory/collection"
	"github.com/tripkit/planner-api/internal/domain"
	"github.com/tripkit/planner-api/internal/ports/out/expenserepo"
)

// Repo is an in-memory implementation of expenserepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	expenses *collection.List[domain.ExpenseID, domain.Expense]
}

func NewRepo(seed ...domain.Expense) *Repo {
	return &Repo{
		expenses: collection.New(func(e domain.Expense) domain.ExpenseID { return e.ID }, cloneExpense, seed...),
	}
}

func (r *Repo) Create(ctx context.Context, e domain.Expense) error {
	_ = ctx
	// Newest first.
	if e.ID == "" || !r.expenses.Insert(e, true, nil) {
		return expenserepo.ErrAlreadyExists
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.ExpenseID) (domain.Expense, error) {
	_ = ctx
	e, ok := r.expenses.Get(id)
	if !ok {
		return domain.Expense{}, expenserepo.ErrNotFound
	}
	return e, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Expense, error) {
	_ = ctx
	return r.expenses.Filter(nil), nil
}

func (r *Repo) ListByTrip(ctx context.Context, tripID domain.TripID) ([]domain.Expense, error) {
	_ = ctx
	return r.expenses.Filter(func(e domain.Expense) bool { return e.TripID == tripID }), nil
}

func (r *Repo) Update(ctx context.Context, id domain.ExpenseID, fn func(*domain.Expense) error) (domain.Expense, error) {
	_ = ctx
	e, ok, err := r.expenses.Update(id, func(e *domain.Expense) error {
		err := fn(e)
		e.ID = id
		return err
	})
	if !ok {
		return domain.Expense{}, expenserepo.ErrNotFound
	}
	if err != nil {
		return domain.Expense{}, err
	}
	return e, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.ExpenseID) error {
	_ = ctx
	if !r.expenses.Delete(id) {
		return expenserepo.ErrNotFound
	}
	return nil
}

func cloneExpense(e domain.Expense) domain.Expense {
	cp := e
	if e.SplitWith != nil {
		cp.SplitWith = append([]domain.UserID(nil), e.SplitWith...)
	}
	return cp
}
