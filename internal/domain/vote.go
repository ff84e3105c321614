package domain

import "time"

// Vote is a group decision poll scoped to a trip.
//
// UserVote records the local session's ballot; once set it never changes.
type Vote struct {
	ID        VoteID
	TripID    TripID
	Title     string
	Options   []string
	Votes     map[string]int
	CreatedBy string
	CreatedAt time.Time
	UserVote  *string
}

// Ballots returns the number of ballots cast across all options.
func (v Vote) Ballots() int {
	n := 0
	for _, c := range v.Votes {
		n += c
	}
	return n
}

// HasOption reports whether option is one of the poll's choices.
func (v Vote) HasOption(option string) bool {
	for _, o := range v.Options {
		if o == option {
			return true
		}
	}
	return false
}

type InvitationStatus string

const InvitationStatusSent InvitationStatus = "sent"

// Invitation acknowledges an invite request. Nothing is delivered and trip
// membership is not changed.
type Invitation struct {
	ID     InvitationID
	TripID TripID
	Email  string
	Status InvitationStatus
	SentAt time.Time
}
