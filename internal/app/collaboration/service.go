package collaboration

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tripkit/planner-api/internal/app/apperr"
	"github.com/tripkit/planner-api/internal/domain"
	"github.com/tripkit/planner-api/internal/ports/out/clock"
	"github.com/tripkit/planner-api/internal/ports/out/latency"
	"github.com/tripkit/planner-api/internal/ports/out/voterepo"
)

type Service struct {
	votes   voterepo.Repository
	clock   clock.Clock
	latency latency.Simulator

	newVoteID       func() domain.VoteID
	newInvitationID func() domain.InvitationID
}

func NewService(votesRepo voterepo.Repository, clk clock.Clock, lat latency.Simulator) *Service {
	return &Service{
		votes:   votesRepo,
		clock:   clk,
		latency: lat,
		newVoteID: func() domain.VoteID {
			return domain.VoteID("vote_" + uuid.NewString())
		},
		newInvitationID: func() domain.InvitationID {
			return domain.InvitationID("invitation_" + uuid.NewString())
		},
	}
}

// SetNewVoteIDForTest overrides vote ID generation for deterministic tests.
func (s *Service) SetNewVoteIDForTest(fn func() domain.VoteID) {
	if fn != nil {
		s.newVoteID = fn
	}
}

func (s *Service) ListVotes(ctx context.Context, tripID domain.TripID) ([]domain.Vote, error) {
	if err := s.latency.Wait(ctx, latency.OpList); err != nil {
		return nil, err
	}
	return s.votes.ListByTrip(ctx, tripID)
}

// CreateVote opens a poll with every option at zero ballots.
func (s *Service) CreateVote(ctx context.Context, in CreateVoteInput) (domain.Vote, error) {
	if err := s.latency.Wait(ctx, latency.OpCreate); err != nil {
		return domain.Vote{}, err
	}

	title := domain.NormalizeHumanName(in.Title)
	if in.TripID == "" {
		return domain.Vote{}, apperr.Field("tripId", "is required")
	}
	if title == "" {
		return domain.Vote{}, apperr.Field("title", "must be non-empty")
	}

	options := make([]string, 0, len(in.Options))
	tally := make(map[string]int, len(in.Options))
	for _, o := range in.Options {
		o = strings.TrimSpace(o)
		if o == "" {
			return domain.Vote{}, apperr.Field("options", "must not contain empty options")
		}
		if _, dup := tally[o]; dup {
			return domain.Vote{}, apperr.Field("options", "must be unique")
		}
		tally[o] = 0
		options = append(options, o)
	}
	if len(options) < 2 {
		return domain.Vote{}, apperr.Field("options", "must have at least 2 options")
	}

	createdBy := domain.NormalizeHumanName(in.CreatedBy)
	if createdBy == "" {
		createdBy = domain.CurrentUser.Name
	}

	v := domain.Vote{
		ID:        s.newVoteID(),
		TripID:    in.TripID,
		Title:     title,
		Options:   options,
		Votes:     tally,
		CreatedBy: createdBy,
		CreatedAt: s.clock.Now(),
	}
	if err := s.votes.Create(ctx, v); err != nil {
		if errors.Is(err, voterepo.ErrAlreadyExists) {
			return domain.Vote{}, apperr.Conflict("VOTE_ID_CONFLICT", "vote id conflict")
		}
		return domain.Vote{}, err
	}
	return v, nil
}

// CastVote records the session's single ballot on a poll. The check and the
// increment happen under the repository's write lock, so concurrent callers
// cannot both succeed.
func (s *Service) CastVote(ctx context.Context, voteID domain.VoteID, option string) (domain.Vote, error) {
	if err := s.latency.Wait(ctx, latency.OpUpdate); err != nil {
		return domain.Vote{}, err
	}

	v, err := s.votes.Update(ctx, voteID, func(v *domain.Vote) error {
		if v.UserVote != nil {
			return apperr.AlreadyActed("ALREADY_VOTED", "you have already voted")
		}
		if !v.HasOption(option) {
			return apperr.Field("option", "must be one of the poll's options")
		}
		if v.Votes == nil {
			v.Votes = make(map[string]int, len(v.Options))
		}
		v.Votes[option]++
		choice := option
		v.UserVote = &choice
		return nil
	})
	if err != nil {
		if errors.Is(err, voterepo.ErrNotFound) {
			return domain.Vote{}, apperr.NotFound("VOTE_NOT_FOUND", "vote not found")
		}
		return domain.Vote{}, err
	}
	return v, nil
}

// InviteMember acknowledges an invitation. Nothing is sent and the trip's
// members are not changed.
func (s *Service) InviteMember(ctx context.Context, tripID domain.TripID, email string) (domain.Invitation, error) {
	if err := s.latency.Wait(ctx, latency.OpInvite); err != nil {
		return domain.Invitation{}, err
	}

	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return domain.Invitation{}, apperr.Field("email", "must be a plain email address")
	}

	return domain.Invitation{
		ID:     s.newInvitationID(),
		TripID: tripID,
		Email:  addr.Address,
		Status: domain.InvitationStatusSent,
		SentAt: s.clock.Now(),
	}, nil
}

// ListMembers returns the demo roster. It is the same for every trip and is
// independent of Trip.Members.
func (s *Service) ListMembers(ctx context.Context, _ domain.TripID) ([]domain.Member, error) {
	if err := s.latency.Wait(ctx, latency.OpList); err != nil {
		return nil, err
	}
	return roster(), nil
}

func roster() []domain.Member {
	joined := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	you := domain.CurrentUser
	you.JoinedAt = joined(2024, 1, 1)
	return []domain.Member{
		you,
		{ID: "user2", Name: "Sarah Wilson", Email: "sarah@example.com", Role: domain.MemberRoleMember, JoinedAt: joined(2024, 1, 5)},
		{ID: "user3", Name: "Mike Johnson", Email: "mike@example.com", Role: domain.MemberRoleMember, JoinedAt: joined(2024, 1, 10)},
	}
}
