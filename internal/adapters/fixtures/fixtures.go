// Package fixtures holds the seed data every in-memory store starts from.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/tripkit/planner-api/internal/domain"
)

//go:embed data/*.json
var files embed.FS

// Seed is the decoded fixture set. Each Load returns fresh values.
type Seed struct {
	Trips       []domain.Trip
	Itineraries []domain.Itinerary
	Activities  []domain.Activity
	Expenses    []domain.Expense
	Votes       []domain.Vote
	SearchItems []domain.SearchItem
	Profile     domain.UserProfile
	Preferences domain.Preferences
}

// Load decodes the embedded fixtures.
func Load() (Seed, error) {
	var (
		seed        Seed
		trips       []tripRecord
		itineraries []itineraryRecord
		activities  []activityRecord
		expenses    []expenseRecord
		votes       []voteRecord
		items       []searchItemRecord
		user        userRecord
	)
	for name, dst := range map[string]any{
		"trips.json":         &trips,
		"itineraries.json":   &itineraries,
		"activities.json":    &activities,
		"expenses.json":      &expenses,
		"votes.json":         &votes,
		"searchResults.json": &items,
		"user.json":          &user,
	} {
		if err := decode(name, dst); err != nil {
			return Seed{}, err
		}
	}

	for _, r := range trips {
		seed.Trips = append(seed.Trips, r.toDomain())
	}
	for _, r := range itineraries {
		seed.Itineraries = append(seed.Itineraries, r.toDomain())
	}
	for _, r := range activities {
		seed.Activities = append(seed.Activities, r.toDomain())
	}
	for _, r := range expenses {
		seed.Expenses = append(seed.Expenses, r.toDomain())
	}
	for _, r := range votes {
		seed.Votes = append(seed.Votes, r.toDomain())
	}
	for _, r := range items {
		seed.SearchItems = append(seed.SearchItems, r.toDomain())
	}
	seed.Profile = user.toDomain()
	seed.Preferences = domain.DefaultPreferences()
	seed.Preferences.PreferredCurrency = seed.Profile.PreferredCurrency

	return seed, nil
}

func decode(name string, dst any) error {
	raw, err := files.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}

type memberRecord struct {
	ID    string              `json:"id"`
	Name  string              `json:"name"`
	Email openapi_types.Email `json:"email"`
	Role  string              `json:"role"`
}

type tripRecord struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Status       string             `json:"status"`
	StartDate    openapi_types.Date `json:"startDate"`
	EndDate      openapi_types.Date `json:"endDate"`
	Destinations []string           `json:"destinations"`
	Budget       decimal.Decimal    `json:"budget"`
	Currency     string             `json:"currency"`
	Spent        decimal.Decimal    `json:"spent"`
	TravelStyle  string             `json:"travelStyle"`
	Interests    []string           `json:"interests"`
	Members      []memberRecord     `json:"members"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r tripRecord) toDomain() domain.Trip {
	t := domain.Trip{
		ID:           domain.TripID(r.ID),
		Name:         r.Name,
		Status:       domain.TripStatus(r.Status),
		StartDate:    r.StartDate.Time,
		EndDate:      r.EndDate.Time,
		DateRange:    domain.FormatDateRange(r.StartDate.Time, r.EndDate.Time),
		Destinations: r.Destinations,
		Budget:       r.Budget,
		Currency:     r.Currency,
		Spent:        r.Spent,
		TravelStyle:  r.TravelStyle,
		Interests:    r.Interests,
		CreatedAt:    r.CreatedAt,
	}
	for _, m := range r.Members {
		t.Members = append(t.Members, domain.Member{
			ID:    domain.UserID(m.ID),
			Name:  m.Name,
			Email: string(m.Email),
			Role:  domain.MemberRole(m.Role),
		})
	}
	return t
}

type locationRecord struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type activityRecord struct {
	ID          string          `json:"id"`
	TripID      string          `json:"tripId"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	StartTime   string          `json:"startTime"`
	Duration    int             `json:"duration"`
	Cost        decimal.Decimal `json:"cost"`
	Location    locationRecord  `json:"location"`
	Description string          `json:"description"`
	Completed   bool            `json:"completed"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (r activityRecord) toDomain() domain.Activity {
	return domain.Activity{
		ID:          domain.ActivityID(r.ID),
		TripID:      domain.TripID(r.TripID),
		Name:        r.Name,
		Type:        domain.ActivityType(r.Type),
		StartTime:   r.StartTime,
		Duration:    r.Duration,
		Cost:        r.Cost,
		Location:    domain.Location(r.Location),
		Description: r.Description,
		Completed:   r.Completed,
		CreatedAt:   r.CreatedAt,
	}
}

type dayRecord struct {
	Date          openapi_types.Date `json:"date"`
	Description   string             `json:"description"`
	EstimatedCost decimal.Decimal    `json:"estimatedCost"`
	ActivityIDs   []string           `json:"activityIds"`
}

type itineraryRecord struct {
	ID        string          `json:"id"`
	TripID    string          `json:"tripId"`
	Status    string          `json:"status"`
	TotalCost decimal.Decimal `json:"totalCost"`
	Days      []dayRecord     `json:"days"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (r itineraryRecord) toDomain() domain.Itinerary {
	it := domain.Itinerary{
		ID:        domain.ItineraryID(r.ID),
		TripID:    domain.TripID(r.TripID),
		Status:    domain.ItineraryStatus(r.Status),
		TotalCost: r.TotalCost,
		CreatedAt: r.CreatedAt,
	}
	for _, d := range r.Days {
		day := domain.Day{
			Date:          d.Date.Time,
			Description:   d.Description,
			EstimatedCost: d.EstimatedCost,
		}
		for _, id := range d.ActivityIDs {
			day.ActivityIDs = append(day.ActivityIDs, domain.ActivityID(id))
		}
		it.Days = append(it.Days, day)
	}
	return it
}

type payerRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type expenseRecord struct {
	ID          string             `json:"id"`
	TripID      string             `json:"tripId"`
	Amount      decimal.Decimal    `json:"amount"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	Date        openapi_types.Date `json:"date"`
	PaidBy      payerRecord        `json:"paidBy"`
	SplitWith   []string           `json:"splitWith"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (r expenseRecord) toDomain() domain.Expense {
	e := domain.Expense{
		ID:          domain.ExpenseID(r.ID),
		TripID:      domain.TripID(r.TripID),
		Amount:      r.Amount,
		Category:    domain.ExpenseCategory(r.Category),
		Description: r.Description,
		Date:        r.Date.Time,
		PaidBy:      domain.Payer{ID: domain.UserID(r.PaidBy.ID), Name: r.PaidBy.Name},
		CreatedAt:   r.CreatedAt,
	}
	for _, u := range r.SplitWith {
		e.SplitWith = append(e.SplitWith, domain.UserID(u))
	}
	return e
}

type voteRecord struct {
	ID        string         `json:"id"`
	TripID    string         `json:"tripId"`
	Title     string         `json:"title"`
	Options   []string       `json:"options"`
	Votes     map[string]int `json:"votes"`
	CreatedBy string         `json:"createdBy"`
	CreatedAt time.Time      `json:"createdAt"`
	UserVote  *string        `json:"userVote"`
}

func (r voteRecord) toDomain() domain.Vote {
	return domain.Vote{
		ID:        domain.VoteID(r.ID),
		TripID:    domain.TripID(r.TripID),
		Title:     r.Title,
		Options:   r.Options,
		Votes:     r.Votes,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UserVote:  r.UserVote,
	}
}

type searchItemRecord struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Type          string           `json:"type"`
	Description   string           `json:"description"`
	Location      string           `json:"location"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Currency      string           `json:"currency"`
	Rating        float64          `json:"rating"`
	Distance      float64          `json:"distance"`
	Provider      string           `json:"provider"`
}

func (r searchItemRecord) toDomain() domain.SearchItem {
	return domain.SearchItem{
		ID:            domain.SearchItemID(r.ID),
		Name:          r.Name,
		Type:          domain.SearchType(r.Type),
		Description:   r.Description,
		Location:      r.Location,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Currency:      r.Currency,
		Rating:        r.Rating,
		Distance:      r.Distance,
		Provider:      r.Provider,
	}
}

type userRecord struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Email             openapi_types.Email `json:"email"`
	Phone             string              `json:"phone"`
	Location          string              `json:"location"`
	Bio               string              `json:"bio"`
	Avatar            string              `json:"avatar"`
	PreferredCurrency string              `json:"preferredCurrency"`
	JoinedAt          openapi_types.Date  `json:"joinedAt"`
}

func (r userRecord) toDomain() domain.UserProfile {
	return domain.UserProfile{
		ID:                domain.UserID(r.ID),
		Name:              r.Name,
		Email:             string(r.Email),
		Phone:             r.Phone,
		Location:          r.Location,
		Bio:               r.Bio,
		Avatar:            r.Avatar,
		PreferredCurrency: r.PreferredCurrency,
		JoinedAt:          r.JoinedAt.Time,
	}
}
