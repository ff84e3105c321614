package users

import (
	"time"

	"github.com/tripkit/planner-api/internal/domain"
)

// UpdateProfileInput is a shallow patch of the profile. Null clears optional
// text fields; name and email cannot be null.
type UpdateProfileInput struct {
	Name              domain.Optional[string]
	Email             domain.Optional[string]
	Phone             domain.Optional[string]
	Location          domain.Optional[string]
	Bio               domain.Optional[string]
	Avatar            domain.Optional[string]
	PreferredCurrency domain.Optional[string]
}

// NotificationsPatch updates individual channels; unspecified ones keep their value.
type NotificationsPatch struct {
	Email     domain.Optional[bool]
	Push      domain.Optional[bool]
	SMS       domain.Optional[bool]
	Marketing domain.Optional[bool]
}

type UpdatePreferencesInput struct {
	TravelStyle       domain.Optional[domain.TravelStyle]
	Interests         domain.Optional[[]string]
	PreferredCurrency domain.Optional[string]
	Notifications     NotificationsPatch
}

type UploadDocumentInput struct {
	Name       string
	Type       string
	ExpiryDate *time.Time
}
