package userrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/tripkit/planner-api/internal/domain"
)

func TestRepo_PreferencesAreCopies(t *testing.T) {
	t.Parallel()

	r := NewRepo(domain.UserProfile{ID: "user1"}, domain.DefaultPreferences())

	got, err := r.GetPreferences(context.Background())
	if err != nil {
		t.Fatalf("GetPreferences() err=%v", err)
	}
	got.Interests[0] = "mutated"
	got.Notifications.SMS = true

	again, _ := r.GetPreferences(context.Background())
	if again.Interests[0] != "culture" || again.Notifications.SMS {
		t.Fatalf("store mutated: %+v", again)
	}
}

func TestRepo_UpdateProfile_ErrorLeavesStateAndIDIsFixed(t *testing.T) {
	t.Parallel()

	r := NewRepo(domain.UserProfile{ID: "user1", Name: "Alex"}, domain.DefaultPreferences())

	boom := errors.New("boom")
	if _, err := r.UpdateProfile(context.Background(), func(p *domain.UserProfile) error {
		p.Name = "Changed"
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}

	got, err := r.UpdateProfile(context.Background(), func(p *domain.UserProfile) error {
		p.ID = "other"
		p.Phone = "+1 555 0100"
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateProfile() err=%v", err)
	}
	if got.ID != "user1" || got.Name != "Alex" || got.Phone != "+1 555 0100" {
		t.Fatalf("got=%+v", got)
	}
}
