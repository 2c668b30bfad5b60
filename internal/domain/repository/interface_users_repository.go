package repository

import (
	"context"

	"Wayn-App/internal/domain/model"
)

// UsersRepository stores user documents (anonymous and Google-linked).
// Lookups return (nil, nil) when no document matches, so callers can
// treat "not found" as a normal outcome.
type UsersRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error

	// Save persists the whole document in one write. Counter changes
	// made in memory during a request are not durable until it
	// returns nil.
	Save(ctx context.Context, user *model.User) error

	Delete(ctx context.Context, id string) error
}
