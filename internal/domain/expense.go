package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseCategory string

const (
	ExpenseCategoryFlights       ExpenseCategory = "flights"
	ExpenseCategoryAccommodation ExpenseCategory = "accommodation"
	ExpenseCategoryDining        ExpenseCategory = "dining"
	ExpenseCategoryActivities    ExpenseCategory = "activities"
	ExpenseCategoryTransport     ExpenseCategory = "transport"
	ExpenseCategoryShopping      ExpenseCategory = "shopping"
	ExpenseCategoryOther         ExpenseCategory = "other"
)

// ExpenseCategories lists every category in display order.
func ExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{
		ExpenseCategoryFlights,
		ExpenseCategoryAccommodation,
		ExpenseCategoryDining,
		ExpenseCategoryActivities,
		ExpenseCategoryTransport,
		ExpenseCategoryShopping,
		ExpenseCategoryOther,
	}
}

func (c ExpenseCategory) Valid() bool {
	for _, v := range ExpenseCategories() {
		if c == v {
			return true
		}
	}
	return false
}

type Payer struct {
	ID   UserID
	Name string
}

// Expense is money spent against a trip budget, in the trip's currency.
type Expense struct {
	ID          ExpenseID
	TripID      TripID
	Amount      decimal.Decimal
	Category    ExpenseCategory
	Description string
	Date        time.Time
	PaidBy      Payer
	SplitWith   []UserID
	CreatedAt   time.Time
}

type CategoryTotal struct {
	Category ExpenseCategory
	Total    decimal.Decimal
	Count    int
}

// BudgetSummary is the derived budget view of a trip.
type BudgetSummary struct {
	TripID       TripID
	Budget       decimal.Decimal
	Currency     string
	TotalSpent   decimal.Decimal
	Remaining    decimal.Decimal
	PercentSpent decimal.Decimal
	ByCategory   []CategoryTotal
}
