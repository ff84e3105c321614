package domain

// TripID is an internal identifier for a trip record.
type TripID string

// ItineraryID is an internal identifier for an itinerary record.
type ItineraryID string

// ActivityID is an internal identifier for an activity record.
type ActivityID string

// ExpenseID is an internal identifier for an expense record.
type ExpenseID string

// VoteID is an internal identifier for a group poll.
type VoteID string

// UserID identifies a traveller. There is no identity system behind it;
// the only "real" user is CurrentUser.
type UserID string

// SearchItemID identifies an entry in the search catalog.
type SearchItemID string

type BookingID string
type InvitationID string
type DocumentID string
