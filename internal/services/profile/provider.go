// Package profile supplies the user profile to the analytics core, degrading
// silently when the store cannot deliver one.
package profile

import (
	"context"

	"github.com/m-renshaw/pourwatch-tui/internal/db"
	"github.com/m-renshaw/pourwatch-tui/internal/logger"
	"github.com/m-renshaw/pourwatch-tui/internal/models"
)

// Provider reads the profile from the database, with an optional
// environment-configured override taking precedence. It satisfies
// analysis.ProfileProvider.
type Provider struct {
	database *db.DB
	override models.UserProfile
}

// New creates a Provider. override wins when complete; pass the zero profile
// to always read from the store.
func New(database *db.DB, override models.UserProfile) *Provider {
	return &Provider{database: database, override: override}
}

// Profile returns the best available profile. Store errors are logged and
// swallowed: the caller gets the empty profile, never a failure.
func (p *Provider) Profile(ctx context.Context) (models.UserProfile, error) {
	if p.override.Complete() {
		return p.override, nil
	}
	if p.database == nil {
		return models.UserProfile{}, nil
	}
	stored, err := p.database.GetProfile(ctx)
	if err != nil {
		logger.Warn("could not read stored profile", "error", err)
		return models.UserProfile{}, nil
	}
	return stored, nil
}

// Save persists a profile to the store.
func (p *Provider) Save(ctx context.Context, profile models.UserProfile) error {
	return p.database.SaveProfile(ctx, profile)
}
