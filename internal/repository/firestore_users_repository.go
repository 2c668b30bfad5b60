package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"Wayn-App/internal/domain/model"
	"Wayn-App/internal/domain/repository"
)

const usersCollection = "users"

// FirestoreUsersRepository stores user documents in Firestore.
type FirestoreUsersRepository struct {
	client *firestore.Client
}

// NewFirestoreUsersRepository creates a new FirestoreUsersRepository.
func NewFirestoreUsersRepository(client *firestore.Client) repository.UsersRepository {
	return &FirestoreUsersRepository{
		client: client,
	}
}

func (r *FirestoreUsersRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, nil
	}

	doc, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to convert user document: %w", err)
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

func (r *FirestoreUsersRepository) GetByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	iter := r.client.Collection(usersCollection).
		Where("googleId", "==", googleID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user by google id: %w", err)
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to convert user document: %w", err)
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

func (r *FirestoreUsersRepository) Create(ctx context.Context, user *model.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	_, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.ID, err)
	}
	return nil
}

func (r *FirestoreUsersRepository) Save(ctx context.Context, user *model.User) error {
	user.UpdatedAt = time.Now()
	_, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to save user %s: %w", user.ID, err)
	}
	return nil
}

func (r *FirestoreUsersRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(usersCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return nil
}

// isNotFound matches the Firestore not-found error without pulling in
// the grpc status machinery.
func isNotFound(err error) bool {
	return strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "not found")
}
