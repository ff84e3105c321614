package httpapi

import (
	"time"

	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/tripkit/planner-api/internal/domain"
)

func init() {
	// Money goes over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Member struct {
	Id       string                                `json:"id"`
	Name     string                                `json:"name"`
	Email    string                                `json:"email"`
	Role     string                                `json:"role"`
	JoinedAt nullable.Nullable[openapi_types.Date] `json:"joinedAt,omitempty"`
}

type Trip struct {
	Id           string             `json:"id"`
	Name         string             `json:"name"`
	Status       string             `json:"status"`
	StartDate    openapi_types.Date `json:"startDate"`
	EndDate      openapi_types.Date `json:"endDate"`
	Dates        string             `json:"dates"`
	Destinations []string           `json:"destinations"`
	Budget       decimal.Decimal    `json:"budget"`
	Currency     string             `json:"currency"`
	Spent        decimal.Decimal    `json:"spent"`
	TravelStyle  string             `json:"travelStyle,omitempty"`
	Interests    []string           `json:"interests"`
	Members      []Member           `json:"members"`
	CreatedAt    time.Time          `json:"createdAt"`
}

type CreateTripRequest struct {
	Name         string             `json:"name"`
	StartDate    openapi_types.Date `json:"startDate"`
	EndDate      openapi_types.Date `json:"endDate"`
	Destinations []string           `json:"destinations"`
	Budget       decimal.Decimal    `json:"budget"`
	Currency     string             `json:"currency"`
	TravelStyle  string             `json:"travelStyle"`
	Interests    []string           `json:"interests"`
}

type UpdateTripRequest struct {
	Name         nullable.Nullable[string]             `json:"name,omitempty"`
	Status       nullable.Nullable[string]             `json:"status,omitempty"`
	StartDate    nullable.Nullable[openapi_types.Date] `json:"startDate,omitempty"`
	EndDate      nullable.Nullable[openapi_types.Date] `json:"endDate,omitempty"`
	Budget       nullable.Nullable[decimal.Decimal]    `json:"budget,omitempty"`
	Currency     nullable.Nullable[string]             `json:"currency,omitempty"`
	Spent        nullable.Nullable[decimal.Decimal]    `json:"spent,omitempty"`
	Destinations nullable.Nullable[[]string]           `json:"destinations,omitempty"`
	TravelStyle  nullable.Nullable[string]             `json:"travelStyle,omitempty"`
	Interests    nullable.Nullable[[]string]           `json:"interests,omitempty"`
}

type Location struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type Activity struct {
	Id          string          `json:"id"`
	TripId      string          `json:"tripId"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	StartTime   string          `json:"startTime,omitempty"`
	Duration    int             `json:"duration"`
	Cost        decimal.Decimal `json:"cost"`
	Location    *Location       `json:"location,omitempty"`
	Description string          `json:"description,omitempty"`
	Completed   bool            `json:"completed"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type CreateActivityRequest struct {
	TripId      string          `json:"tripId"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	StartTime   string          `json:"startTime"`
	Duration    int             `json:"duration"`
	Cost        decimal.Decimal `json:"cost"`
	Location    *Location       `json:"location"`
	Description string          `json:"description"`
}

type UpdateActivityRequest struct {
	Name        nullable.Nullable[string]          `json:"name,omitempty"`
	Type        nullable.Nullable[string]          `json:"type,omitempty"`
	StartTime   nullable.Nullable[string]          `json:"startTime,omitempty"`
	Duration    nullable.Nullable[int]             `json:"duration,omitempty"`
	Cost        nullable.Nullable[decimal.Decimal] `json:"cost,omitempty"`
	Location    nullable.Nullable[Location]        `json:"location,omitempty"`
	Description nullable.Nullable[string]          `json:"description,omitempty"`
	Completed   nullable.Nullable[bool]            `json:"completed,omitempty"`
}

type Day struct {
	Date          openapi_types.Date `json:"date"`
	Description   string             `json:"description,omitempty"`
	EstimatedCost decimal.Decimal    `json:"estimatedCost"`
	ActivityIds   []string           `json:"activityIds"`
	Activities    []Activity         `json:"activities"`
}

type Itinerary struct {
	Id        string          `json:"id"`
	TripId    string          `json:"tripId"`
	Status    string          `json:"status"`
	TotalCost decimal.Decimal `json:"totalCost"`
	Days      []Day           `json:"days"`
	CreatedAt time.Time       `json:"createdAt"`
}

type NewActivityRequest struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	StartTime   string          `json:"startTime"`
	Duration    int             `json:"duration"`
	Cost        decimal.Decimal `json:"cost"`
	Location    *Location       `json:"location"`
	Description string          `json:"description"`
}

type CreateDayRequest struct {
	Date          openapi_types.Date   `json:"date"`
	Description   string               `json:"description"`
	EstimatedCost decimal.Decimal      `json:"estimatedCost"`
	Activities    []NewActivityRequest `json:"activities"`
}

type CreateItineraryRequest struct {
	TripId    string             `json:"tripId"`
	Status    string             `json:"status"`
	TotalCost decimal.Decimal    `json:"totalCost"`
	Days      []CreateDayRequest `json:"days"`
}

type UpdateDayRequest struct {
	Date          openapi_types.Date `json:"date"`
	Description   string             `json:"description"`
	EstimatedCost decimal.Decimal    `json:"estimatedCost"`
	ActivityIds   []string           `json:"activityIds"`
}

type UpdateItineraryRequest struct {
	Status    nullable.Nullable[string]             `json:"status,omitempty"`
	TotalCost nullable.Nullable[decimal.Decimal]    `json:"totalCost,omitempty"`
	Days      nullable.Nullable[[]UpdateDayRequest] `json:"days,omitempty"`
}

type Payer struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type Expense struct {
	Id          string             `json:"id"`
	TripId      string             `json:"tripId"`
	Amount      decimal.Decimal    `json:"amount"`
	Category    string             `json:"category"`
	Description string             `json:"description,omitempty"`
	Date        openapi_types.Date `json:"date"`
	PaidBy      Payer              `json:"paidBy"`
	SplitWith   []string           `json:"splitWith"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type CreateExpenseRequest struct {
	TripId      string                                `json:"tripId"`
	Amount      decimal.Decimal                       `json:"amount"`
	Category    string                                `json:"category"`
	Description string                                `json:"description"`
	Date        nullable.Nullable[openapi_types.Date] `json:"date,omitempty"`
	PaidBy      *Payer                                `json:"paidBy"`
	SplitWith   []string                              `json:"splitWith"`
}

type UpdateExpenseRequest struct {
	Amount      nullable.Nullable[decimal.Decimal]    `json:"amount,omitempty"`
	Category    nullable.Nullable[string]             `json:"category,omitempty"`
	Description nullable.Nullable[string]             `json:"description,omitempty"`
	Date        nullable.Nullable[openapi_types.Date] `json:"date,omitempty"`
	PaidBy      nullable.Nullable[Payer]              `json:"paidBy,omitempty"`
	SplitWith   nullable.Nullable[[]string]           `json:"splitWith,omitempty"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

type BudgetSummary struct {
	TripId       string          `json:"tripId"`
	Budget       decimal.Decimal `json:"budget"`
	Currency     string          `json:"currency"`
	TotalSpent   decimal.Decimal `json:"totalSpent"`
	Remaining    decimal.Decimal `json:"remaining"`
	PercentSpent decimal.Decimal `json:"percentSpent"`
	ByCategory   []CategoryTotal `json:"byCategory"`
}

type Vote struct {
	Id        string                    `json:"id"`
	TripId    string                    `json:"tripId"`
	Title     string                    `json:"title"`
	Options   []string                  `json:"options"`
	Votes     map[string]int            `json:"votes"`
	CreatedBy string                    `json:"createdBy"`
	CreatedAt time.Time                 `json:"createdAt"`
	UserVote  nullable.Nullable[string] `json:"userVote"`
}

type CreateVoteRequest struct {
	TripId    string   `json:"tripId"`
	Title     string   `json:"title"`
	Options   []string `json:"options"`
	CreatedBy string   `json:"createdBy"`
}

type CastVoteRequest struct {
	Option string `json:"option"`
}

type InviteMemberRequest struct {
	Email string `json:"email"`
}

type Invitation struct {
	Id     string    `json:"id"`
	TripId string    `json:"tripId"`
	Email  string    `json:"email"`
	Status string    `json:"status"`
	SentAt time.Time `json:"sentAt"`
}

type SearchItem struct {
	Id            string           `json:"id"`
	Name          string           `json:"name"`
	Type          string           `json:"type"`
	Description   string           `json:"description"`
	Location      string           `json:"location"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Currency      string           `json:"currency"`
	Rating        float64          `json:"rating"`
	Distance      float64          `json:"distance"`
	Provider      string           `json:"provider"`
}

type Booking struct {
	BookingId   string    `json:"bookingId"`
	ItemId      string    `json:"itemId"`
	Status      string    `json:"status"`
	BookingDate time.Time `json:"bookingDate"`
}

type UserProfile struct {
	Id                string             `json:"id"`
	Name              string             `json:"name"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone,omitempty"`
	Location          string             `json:"location,omitempty"`
	Bio               string             `json:"bio,omitempty"`
	Avatar            string             `json:"avatar,omitempty"`
	PreferredCurrency string             `json:"preferredCurrency"`
	JoinedAt          openapi_types.Date `json:"joinedAt"`
}

type UpdateProfileRequest struct {
	Name              nullable.Nullable[string]              `json:"name,omitempty"`
	Email             nullable.Nullable[openapi_types.Email] `json:"email,omitempty"`
	Phone             nullable.Nullable[string]              `json:"phone,omitempty"`
	Location          nullable.Nullable[string]              `json:"location,omitempty"`
	Bio               nullable.Nullable[string]              `json:"bio,omitempty"`
	Avatar            nullable.Nullable[string]              `json:"avatar,omitempty"`
	PreferredCurrency nullable.Nullable[string]              `json:"preferredCurrency,omitempty"`
}

type NotificationSettings struct {
	Email     bool `json:"email"`
	Push      bool `json:"push"`
	SMS       bool `json:"sms"`
	Marketing bool `json:"marketing"`
}

type Preferences struct {
	TravelStyle       string               `json:"travelStyle"`
	Interests         []string             `json:"interests"`
	PreferredCurrency string               `json:"preferredCurrency"`
	Notifications     NotificationSettings `json:"notifications"`
}

type NotificationsPatchRequest struct {
	Email     nullable.Nullable[bool] `json:"email,omitempty"`
	Push      nullable.Nullable[bool] `json:"push,omitempty"`
	SMS       nullable.Nullable[bool] `json:"sms,omitempty"`
	Marketing nullable.Nullable[bool] `json:"marketing,omitempty"`
}

type UpdatePreferencesRequest struct {
	TravelStyle       nullable.Nullable[string]   `json:"travelStyle,omitempty"`
	Interests         nullable.Nullable[[]string] `json:"interests,omitempty"`
	PreferredCurrency nullable.Nullable[string]   `json:"preferredCurrency,omitempty"`
	Notifications     *NotificationsPatchRequest  `json:"notifications,omitempty"`
}

type Document struct {
	Id         string                                `json:"id"`
	Name       string                                `json:"name"`
	Type       string                                `json:"type"`
	UploadedAt time.Time                             `json:"uploadedAt"`
	ExpiryDate nullable.Nullable[openapi_types.Date] `json:"expiryDate,omitempty"`
}

type UploadDocumentRequest struct {
	Name       string                                `json:"name"`
	Type       string                                `json:"type"`
	ExpiryDate nullable.Nullable[openapi_types.Date] `json:"expiryDate,omitempty"`
}

// Converters.

func optionalFromNullable[T any](n nullable.Nullable[T]) domain.Optional[T] {
	if !n.IsSpecified() {
		return domain.Unspecified[T]()
	}
	if n.IsNull() {
		return domain.Null[T]()
	}
	v, err := n.Get()
	if err != nil {
		return domain.Unspecified[T]()
	}
	return domain.Some(v)
}

// optionalMapped is optionalFromNullable with a conversion applied to the value.
func optionalMapped[T, U any](n nullable.Nullable[T], fn func(T) U) domain.Optional[U] {
	o := optionalFromNullable(n)
	switch {
	case !o.IsSpecified():
		return domain.Unspecified[U]()
	case o.IsNull():
		return domain.Null[U]()
	default:
		return domain.Some(fn(o.Value()))
	}
}

func dateOf(d openapi_types.Date) time.Time { return d.Time }

func nullableDate(p *time.Time) nullable.Nullable[openapi_types.Date] {
	var out nullable.Nullable[openapi_types.Date]
	if p == nil {
		return out
	}
	out.Set(openapi_types.Date{Time: p.UTC()})
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func memberFromDomain(m domain.Member) Member {
	return Member{
		Id:       string(m.ID),
		Name:     m.Name,
		Email:    m.Email,
		Role:     string(m.Role),
		JoinedAt: nullableDate(m.JoinedAt),
	}
}

func tripFromDomain(t domain.Trip) Trip {
	out := Trip{
		Id:           string(t.ID),
		Name:         t.Name,
		Status:       string(t.Status),
		StartDate:    openapi_types.Date{Time: t.StartDate},
		EndDate:      openapi_types.Date{Time: t.EndDate},
		Dates:        t.DateRange,
		Destinations: nonNil(t.Destinations),
		Budget:       t.Budget,
		Currency:     t.Currency,
		Spent:        t.Spent,
		TravelStyle:  t.TravelStyle,
		Interests:    nonNil(t.Interests),
		Members:      make([]Member, 0, len(t.Members)),
		CreatedAt:    t.CreatedAt,
	}
	for _, m := range t.Members {
		out.Members = append(out.Members, memberFromDomain(m))
	}
	return out
}

func locationFromDomain(l domain.Location) *Location {
	if l == (domain.Location{}) {
		return nil
	}
	out := Location(l)
	return &out
}

func locationToDomain(l *Location) domain.Location {
	if l == nil {
		return domain.Location{}
	}
	return domain.Location(*l)
}

func activityFromDomain(a domain.Activity) Activity {
	return Activity{
		Id:          string(a.ID),
		TripId:      string(a.TripID),
		Name:        a.Name,
		Type:        string(a.Type),
		StartTime:   a.StartTime,
		Duration:    a.Duration,
		Cost:        a.Cost,
		Location:    locationFromDomain(a.Location),
		Description: a.Description,
		Completed:   a.Completed,
		CreatedAt:   a.CreatedAt,
	}
}

func activitiesFromDomain(as []domain.Activity) []Activity {
	out := make([]Activity, 0, len(as))
	for _, a := range as {
		out = append(out, activityFromDomain(a))
	}
	return out
}

func itineraryFromDomain(it domain.Itinerary) Itinerary {
	out := Itinerary{
		Id:        string(it.ID),
		TripId:    string(it.TripID),
		Status:    string(it.Status),
		TotalCost: it.TotalCost,
		Days:      make([]Day, 0, len(it.Days)),
		CreatedAt: it.CreatedAt,
	}
	for _, d := range it.Days {
		day := Day{
			Date:          openapi_types.Date{Time: d.Date},
			Description:   d.Description,
			EstimatedCost: d.EstimatedCost,
			ActivityIds:   make([]string, 0, len(d.ActivityIDs)),
			Activities:    activitiesFromDomain(d.Activities),
		}
		for _, id := range d.ActivityIDs {
			day.ActivityIds = append(day.ActivityIds, string(id))
		}
		out.Days = append(out.Days, day)
	}
	return out
}

func userIDs(ids []string) []domain.UserID {
	if ids == nil {
		return nil
	}
	out := make([]domain.UserID, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.UserID(id))
	}
	return out
}

func payerToDomain(p Payer) domain.Payer {
	return domain.Payer{ID: domain.UserID(p.Id), Name: p.Name}
}

func expenseFromDomain(e domain.Expense) Expense {
	out := Expense{
		Id:          string(e.ID),
		TripId:      string(e.TripID),
		Amount:      e.Amount,
		Category:    string(e.Category),
		Description: e.Description,
		Date:        openapi_types.Date{Time: e.Date},
		PaidBy:      Payer{Id: string(e.PaidBy.ID), Name: e.PaidBy.Name},
		SplitWith:   make([]string, 0, len(e.SplitWith)),
		CreatedAt:   e.CreatedAt,
	}
	for _, u := range e.SplitWith {
		out.SplitWith = append(out.SplitWith, string(u))
	}
	return out
}

func budgetSummaryFromDomain(b domain.BudgetSummary) BudgetSummary {
	out := BudgetSummary{
		TripId:       string(b.TripID),
		Budget:       b.Budget,
		Currency:     b.Currency,
		TotalSpent:   b.TotalSpent,
		Remaining:    b.Remaining,
		PercentSpent: b.PercentSpent,
		ByCategory:   make([]CategoryTotal, 0, len(b.ByCategory)),
	}
	for _, c := range b.ByCategory {
		out.ByCategory = append(out.ByCategory, CategoryTotal{Category: string(c.Category), Total: c.Total, Count: c.Count})
	}
	return out
}

func voteFromDomain(v domain.Vote) Vote {
	out := Vote{
		Id:        string(v.ID),
		TripId:    string(v.TripID),
		Title:     v.Title,
		Options:   nonNil(v.Options),
		Votes:     v.Votes,
		CreatedBy: v.CreatedBy,
		CreatedAt: v.CreatedAt,
	}
	if out.Votes == nil {
		out.Votes = map[string]int{}
	}
	if v.UserVote != nil {
		out.UserVote = nullable.NewNullableWithValue(*v.UserVote)
	} else {
		out.UserVote = nullable.NewNullNullable[string]()
	}
	return out
}

func invitationFromDomain(i domain.Invitation) Invitation {
	return Invitation{
		Id:     string(i.ID),
		TripId: string(i.TripID),
		Email:  i.Email,
		Status: string(i.Status),
		SentAt: i.SentAt,
	}
}

func searchItemFromDomain(it domain.SearchItem) SearchItem {
	return SearchItem{
		Id:            string(it.ID),
		Name:          it.Name,
		Type:          string(it.Type),
		Description:   it.Description,
		Location:      it.Location,
		Price:         it.Price,
		OriginalPrice: it.OriginalPrice,
		Currency:      it.Currency,
		Rating:        it.Rating,
		Distance:      it.Distance,
		Provider:      it.Provider,
	}
}

func bookingFromDomain(b domain.Booking) Booking {
	return Booking{
		BookingId:   string(b.ID),
		ItemId:      string(b.ItemID),
		Status:      string(b.Status),
		BookingDate: b.BookingDate,
	}
}

func profileFromDomain(p domain.UserProfile) UserProfile {
	return UserProfile{
		Id:                string(p.ID),
		Name:              p.Name,
		Email:             p.Email,
		Phone:             p.Phone,
		Location:          p.Location,
		Bio:               p.Bio,
		Avatar:            p.Avatar,
		PreferredCurrency: p.PreferredCurrency,
		JoinedAt:          openapi_types.Date{Time: p.JoinedAt},
	}
}

func preferencesFromDomain(p domain.Preferences) Preferences {
	return Preferences{
		TravelStyle:       string(p.TravelStyle),
		Interests:         nonNil(p.Interests),
		PreferredCurrency: p.PreferredCurrency,
		Notifications: NotificationSettings{
			Email:     p.Notifications.Email,
			Push:      p.Notifications.Push,
			SMS:       p.Notifications.SMS,
			Marketing: p.Notifications.Marketing,
		},
	}
}

func documentFromDomain(d domain.Document) Document {
	return Document{
		Id:         string(d.ID),
		Name:       d.Name,
		Type:       d.Type,
		UploadedAt: d.UploadedAt,
		ExpiryDate: nullableDate(d.ExpiryDate),
	}
}
