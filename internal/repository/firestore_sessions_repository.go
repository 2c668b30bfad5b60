package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"Wayn-App/internal/domain/model"
	"Wayn-App/internal/domain/repository"
)

const sessionsCollection = "sessions"

// FirestoreSessionsRepository stores server-side session documents in
// Firestore, shared by every instance of the service.
type FirestoreSessionsRepository struct {
	client *firestore.Client
}

// NewFirestoreSessionsRepository creates a new FirestoreSessionsRepository.
func NewFirestoreSessionsRepository(client *firestore.Client) repository.SessionsRepository {
	return &FirestoreSessionsRepository{
		client: client,
	}
}

func (r *FirestoreSessionsRepository) Get(ctx context.Context, id string) (*model.Session, error) {
	if id == "" {
		return nil, nil
	}

	doc, err := r.client.Collection(sessionsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch session %s: %w", id, err)
	}

	var session model.Session
	if err := doc.DataTo(&session); err != nil {
		return nil, fmt.Errorf("failed to convert session document: %w", err)
	}
	session.ID = doc.Ref.ID

	// An expired session is treated the same as a missing one; the
	// stale document is cleaned up opportunistically.
	if session.Expired(time.Now()) {
		_, _ = r.client.Collection(sessionsCollection).Doc(id).Delete(ctx)
		return nil, nil
	}

	return &session, nil
}

func (r *FirestoreSessionsRepository) Put(ctx context.Context, session *model.Session) error {
	_, err := r.client.Collection(sessionsCollection).Doc(session.ID).Set(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.ID, err)
	}
	return nil
}

func (r *FirestoreSessionsRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(sessionsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}
