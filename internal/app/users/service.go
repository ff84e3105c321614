package users

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tripkit/planner-api/internal/app/apperr"
	"github.com/tripkit/planner-api/internal/domain"
	"github.com/tripkit/planner-api/internal/ports/out/clock"
	"github.com/tripkit/planner-api/internal/ports/out/latency"
	"github.com/tripkit/planner-api/internal/ports/out/userrepo"
)

type Service struct {
	users   userrepo.Repository
	clock   clock.Clock
	latency latency.Simulator

	newDocumentID func() domain.DocumentID
}

func NewService(usersRepo userrepo.Repository, clk clock.Clock, lat latency.Simulator) *Service {
	return &Service{
		users:   usersRepo,
		clock:   clk,
		latency: lat,
		newDocumentID: func() domain.DocumentID {
			return domain.DocumentID("doc_" + uuid.NewString())
		},
	}
}

// SetNewDocumentIDForTest overrides document ID generation for deterministic tests.
func (s *Service) SetNewDocumentIDForTest(fn func() domain.DocumentID) {
	if fn != nil {
		s.newDocumentID = fn
	}
}

func (s *Service) GetProfile(ctx context.Context) (domain.UserProfile, error) {
	if err := s.latency.Wait(ctx, latency.OpProfile); err != nil {
		return domain.UserProfile{}, err
	}
	return s.users.GetProfile(ctx)
}

func (s *Service) UpdateProfile(ctx context.Context, in UpdateProfileInput) (domain.UserProfile, error) {
	if err := s.latency.Wait(ctx, latency.OpProfileEdit); err != nil {
		return domain.UserProfile{}, err
	}
	return s.users.UpdateProfile(ctx, func(p *domain.UserProfile) error {
		if in.Name.IsSpecified() {
			name := domain.NormalizeHumanName(in.Name.Value())
			if in.Name.IsNull() || name == "" {
				return apperr.Field("name", "must be non-empty")
			}
			p.Name = name
		}
		if in.Email.IsSpecified() {
			email := strings.TrimSpace(in.Email.Value())
			addr, err := mail.ParseAddress(email)
			if in.Email.IsNull() || err != nil || addr.Address != email {
				return apperr.Field("email", "must be a plain email address")
			}
			p.Email = email
		}
		setText(&p.Phone, in.Phone)
		setText(&p.Location, in.Location)
		setText(&p.Bio, in.Bio)
		setText(&p.Avatar, in.Avatar)
		if in.PreferredCurrency.IsSpecified() {
			cur, err := domain.NormalizeCurrency(in.PreferredCurrency.Value())
			if err != nil {
				return apperr.Field("preferredCurrency", "must be an ISO 4217 code")
			}
			p.PreferredCurrency = cur
		}
		return nil
	})
}

func (s *Service) GetPreferences(ctx context.Context) (domain.Preferences, error) {
	if err := s.latency.Wait(ctx, latency.OpPreferences); err != nil {
		return domain.Preferences{}, err
	}
	return s.users.GetPreferences(ctx)
}

// UpdatePreferences merges the patch into the stored preferences. Notification
// channels are merged one by one, so updating sms leaves email, push and
// marketing untouched.
func (s *Service) UpdatePreferences(ctx context.Context, in UpdatePreferencesInput) (domain.Preferences, error) {
	if err := s.latency.Wait(ctx, latency.OpUpdate); err != nil {
		return domain.Preferences{}, err
	}
	return s.users.UpdatePreferences(ctx, func(p *domain.Preferences) error {
		if in.TravelStyle.IsSpecified() {
			if in.TravelStyle.IsNull() || !in.TravelStyle.Value().Valid() {
				return apperr.Field("travelStyle", "must be budget, balanced or luxury")
			}
			p.TravelStyle = in.TravelStyle.Value()
		}
		if in.Interests.IsSpecified() {
			p.Interests = domain.NormalizeList(in.Interests.Value())
		}
		if in.PreferredCurrency.IsSpecified() {
			cur, err := domain.NormalizeCurrency(in.PreferredCurrency.Value())
			if err != nil {
				return apperr.Field("preferredCurrency", "must be an ISO 4217 code")
			}
			p.PreferredCurrency = cur
		}
		setFlag(&p.Notifications.Email, in.Notifications.Email)
		setFlag(&p.Notifications.Push, in.Notifications.Push)
		setFlag(&p.Notifications.SMS, in.Notifications.SMS)
		setFlag(&p.Notifications.Marketing, in.Notifications.Marketing)
		return nil
	})
}

// UploadDocument returns a document record. There is no file storage and the
// record does not appear in ListDocuments.
func (s *Service) UploadDocument(ctx context.Context, in UploadDocumentInput) (domain.Document, error) {
	if err := s.latency.Wait(ctx, latency.OpUpload); err != nil {
		return domain.Document{}, err
	}
	name := domain.NormalizeHumanName(in.Name)
	if name == "" {
		return domain.Document{}, apperr.Field("name", "must be non-empty")
	}
	doc := domain.Document{
		ID:         s.newDocumentID(),
		Name:       name,
		Type:       strings.TrimSpace(in.Type),
		UploadedAt: s.clock.Now(),
	}
	if in.ExpiryDate != nil {
		v := *in.ExpiryDate
		doc.ExpiryDate = &v
	}
	return doc, nil
}

// ListDocuments returns the demo passport and licence records.
func (s *Service) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	if err := s.latency.Wait(ctx, latency.OpList); err != nil {
		return nil, err
	}
	day := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	return []domain.Document{
		{
			ID:         "doc1",
			Name:       "Passport",
			Type:       "passport",
			UploadedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			ExpiryDate: day(2029, 1, 15),
		},
		{
			ID:         "doc2",
			Name:       "Driver License",
			Type:       "license",
			UploadedAt: time.Date(2024, 1, 10, 14, 20, 0, 0, time.UTC),
			ExpiryDate: day(2026, 3, 20),
		},
	}, nil
}

func setText(dst *string, o domain.Optional[string]) {
	if o.IsSpecified() {
		*dst = strings.TrimSpace(o.Value())
	}
}

func setFlag(dst *bool, o domain.Optional[bool]) {
	if o.HasValue() {
		*dst = o.Value()
	}
}
