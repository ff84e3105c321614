package userrepo

import (
	"context"

	"github.com/tripkit/planner-api/internal/domain"
)

// Repository holds the singleton profile and preferences of the local user.
type Repository interface {
	GetProfile(ctx context.Context) (domain.UserProfile, error)
	UpdateProfile(ctx context.Context, fn func(*domain.UserProfile) error) (domain.UserProfile, error)

	GetPreferences(ctx context.Context) (domain.Preferences, error)
	UpdatePreferences(ctx context.Context, fn func(*domain.Preferences) error) (domain.Preferences, error)
}
