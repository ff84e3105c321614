package domain

import "time"

type MemberRole string

const (
	MemberRoleOrganizer MemberRole = "organizer"
	MemberRoleMember    MemberRole = "member"
)

// Member is a participant of a trip.
// JoinedAt is only populated by the collaboration roster.
type Member struct {
	ID       UserID
	Name     string
	Email    string
	Role     MemberRole
	JoinedAt *time.Time
}

// CurrentUser is the single local user. Every created trip lists it as organizer.
var CurrentUser = Member{
	ID:    "user1",
	Name:  "You",
	Email: "you@example.com",
	Role:  MemberRoleOrganizer,
}
