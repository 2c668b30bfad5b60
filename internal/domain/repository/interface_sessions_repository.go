package repository

import (
	"context"

	"Wayn-App/internal/domain/model"
)

// SessionsRepository stores server-side session documents shared
// across requests from the same browser. Get returns (nil, nil) for
// unknown or expired ids.
type SessionsRepository interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Put(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id string) error
}
