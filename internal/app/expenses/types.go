package expenses

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripkit/planner-api/internal/domain"
)

type CreateExpenseInput struct {
	TripID      domain.TripID
	Amount      decimal.Decimal
	Category    domain.ExpenseCategory
	Description string
	Date        time.Time // zero means today
	PaidBy      *domain.Payer
	SplitWith   []domain.UserID
}

type UpdateExpenseInput struct {
	Amount      domain.Optional[decimal.Decimal]
	Category    domain.Optional[domain.ExpenseCategory]
	Description domain.Optional[string] // null clears
	Date        domain.Optional[time.Time]
	PaidBy      domain.Optional[domain.Payer]
	SplitWith   domain.Optional[[]domain.UserID] // null clears
}
