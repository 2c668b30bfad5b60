package repository

import (
	"context"

	"Wayn-App/internal/domain/model"
)

// OAuthProvider drives the external identity provider's
// authorization-code flow.
type OAuthProvider interface {
	// AuthURL returns the consent-screen URL for the given CSRF state.
	AuthURL(state string) string

	// Exchange trades the callback code for the account profile.
	Exchange(ctx context.Context, code string) (*model.GoogleProfile, error)
}
