package userrepo

import (
	"context"
	"sync"

	"github.com/tripkit/planner-api/internal/domain"
)

// Repo is an in-memory implementation of userrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu      sync.RWMutex
	profile domain.UserProfile
	prefs   domain.Preferences
}

func NewRepo(profile domain.UserProfile, prefs domain.Preferences) *Repo {
	return &Repo{profile: profile, prefs: clonePreferences(prefs)}
}

func (r *Repo) GetProfile(ctx context.Context) (domain.UserProfile, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile, nil
}

func (r *Repo) UpdateProfile(ctx context.Context, fn func(*domain.UserProfile) error) (domain.UserProfile, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := r.profile
	if err := fn(&cp); err != nil {
		return domain.UserProfile{}, err
	}
	cp.ID = r.profile.ID
	r.profile = cp
	return cp, nil
}

func (r *Repo) GetPreferences(ctx context.Context) (domain.Preferences, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clonePreferences(r.prefs), nil
}

func (r *Repo) UpdatePreferences(ctx context.Context, fn func(*domain.Preferences) error) (domain.Preferences, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := clonePreferences(r.prefs)
	if err := fn(&cp); err != nil {
		return domain.Preferences{}, err
	}
	r.prefs = clonePreferences(cp)
	return cp, nil
}

func clonePreferences(p domain.Preferences) domain.Preferences {
	cp := p
	if p.Interests != nil {
		cp.Interests = append([]string(nil), p.Interests...)
	}
	return cp
}
