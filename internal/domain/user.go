package domain

import "time"

// UserProfile is the singleton profile of CurrentUser.
type UserProfile struct {
	ID                UserID
	Name              string
	Email             string
	Phone             string
	Location          string
	Bio               string
	Avatar            string
	PreferredCurrency string
	JoinedAt          time.Time
}

type TravelStyle string

const (
	TravelStyleBudget   TravelStyle = "budget"
	TravelStyleBalanced TravelStyle = "balanced"
	TravelStyleLuxury   TravelStyle = "luxury"
)

func (s TravelStyle) Valid() bool {
	return s == TravelStyleBudget || s == TravelStyleBalanced || s == TravelStyleLuxury
}

type NotificationSettings struct {
	Email     bool
	Push      bool
	SMS       bool
	Marketing bool
}

type Preferences struct {
	TravelStyle       TravelStyle
	Interests         []string
	PreferredCurrency string
	Notifications     NotificationSettings
}

// DefaultPreferences are the preferences a fresh profile starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		TravelStyle:       TravelStyleBalanced,
		Interests:         []string{"culture", "food", "nature"},
		PreferredCurrency: DefaultCurrency,
		Notifications: NotificationSettings{
			Email: true,
			Push:  true,
		},
	}
}

// Document is a travel document record. There is no file storage behind it.
type Document struct {
	ID         DocumentID
	Name       string
	Type       string
	UploadedAt time.Time
	ExpiryDate *time.Time
}
