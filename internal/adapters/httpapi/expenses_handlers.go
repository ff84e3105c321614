package httpapi

import (
	"net/http"

	"github.com/tripkit/planner-api/internal/app/expenses"
	"github.com/tripkit/planner-api/internal/domain"
)

func expensesFromDomain(es []domain.Expense) []Expense {
	out := make([]Expense, 0, len(es))
	for _, e := range es {
		out = append(out, expenseFromDomain(e))
	}
	return out
}

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {
	es, err := s.svc.Expenses.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, expensesFromDomain(es))
}

func (s *Server) getExpense(w http.ResponseWriter, r *http.Request) {
	e, err := s.svc.Expenses.GetByID(r.Context(), pathID[domain.ExpenseID](r, "expenseId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, expenseFromDomain(e))
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {
	var body CreateExpenseRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	in := expenses.CreateExpenseInput{
		TripID:      domain.TripID(body.TripId),
		Amount:      body.Amount,
		Category:    domain.ExpenseCategory(body.Category),
		Description: body.Description,
		SplitWith:   userIDs(body.SplitWith),
	}
	if d := optionalMapped(body.Date, dateOf); d.HasValue() {
		in.Date = d.Value()
	}
	if body.PaidBy != nil {
		p := payerToDomain(*body.PaidBy)
		in.PaidBy = &p
	}
	e, err := s.svc.Expenses.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, expenseFromDomain(e))
}

func (s *Server) updateExpense(w http.ResponseWriter, r *http.Request) {
	var body UpdateExpenseRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	in := expenses.UpdateExpenseInput{
		Amount:      optionalFromNullable(body.Amount),
		Category:    optionalMapped(body.Category, func(v string) domain.ExpenseCategory { return domain.ExpenseCategory(v) }),
		Description: optionalFromNullable(body.Description),
		Date:        optionalMapped(body.Date, dateOf),
		PaidBy:      optionalMapped(body.PaidBy, payerToDomain),
		SplitWith:   optionalMapped(body.SplitWith, userIDs),
	}
	e, err := s.svc.Expenses.Update(r.Context(), pathID[domain.ExpenseID](r, "expenseId"), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, expenseFromDomain(e))
}

func (s *Server) deleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Expenses.Delete(r.Context(), pathID[domain.ExpenseID](r, "expenseId")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
