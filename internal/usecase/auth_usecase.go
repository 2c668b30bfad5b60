package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"Wayn-App/internal/domain/model"
	"Wayn-App/internal/domain/repository"
)

// ErrNotAuthenticated means the session does not resolve to a
// Google-linked user.
var ErrNotAuthenticated = errors.New("user not authenticated")

// ErrStateMismatch means the OAuth callback carried a state value the
// session never issued.
var ErrStateMismatch = errors.New("oauth state mismatch")

// AuthUseCase manages anonymous identities, the Google login flow and
// the anonymous-into-authenticated merge.
type AuthUseCase interface {
	// AnonymousSession finds the anonymous user by id, or creates a
	// fresh one when the id is absent or stale.
	AnonymousSession(ctx context.Context, anonymousID string) (*model.AnonymousSessionResponse, error)

	// BeginGoogleLogin stashes the linkage token and a CSRF state in
	// the session and returns the consent-screen URL.
	BeginGoogleLogin(ctx context.Context, session *model.Session, anonymousID string) (string, error)

	// CompleteGoogleLogin handles the OAuth callback: verifies state,
	// exchanges the code, finds or creates the user, merges the
	// anonymous record when the session carries a linkage token, and
	// marks the session authenticated.
	CompleteGoogleLogin(ctx context.Context, session *model.Session, state, code string) (*model.User, error)

	// CurrentUser resolves the session to its authenticated user.
	CurrentUser(ctx context.Context, session *model.Session) (*model.User, error)

	// Logout discards the session document.
	Logout(ctx context.Context, session *model.Session) error
}

type authUseCaseImpl struct {
	users    repository.UsersRepository
	sessions repository.SessionsRepository
	oauth    repository.OAuthProvider
	now      func() time.Time
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(
	users repository.UsersRepository,
	sessions repository.SessionsRepository,
	oauth repository.OAuthProvider,
) AuthUseCase {
	return &authUseCaseImpl{
		users:    users,
		sessions: sessions,
		oauth:    oauth,
		now:      time.Now,
	}
}

func (u *authUseCaseImpl) AnonymousSession(ctx context.Context, anonymousID string) (*model.AnonymousSessionResponse, error) {
	var user *model.User
	var err error

	if anonymousID != "" {
		user, err = u.users.GetByID(ctx, anonymousID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up anonymous user: %w", err)
		}
	}

	// Unknown or first-visit id: start a fresh record with defaults.
	if user == nil {
		user = model.NewAnonymousUser(uuid.New().String(), u.now())
		if err := u.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create anonymous user: %w", err)
		}
	}

	return &model.AnonymousSessionResponse{
		AnonymousID: user.ID,
		Points:      user.Points,
	}, nil
}

func (u *authUseCaseImpl) BeginGoogleLogin(ctx context.Context, session *model.Session, anonymousID string) (string, error) {
	session.AnonymousID = anonymousID
	session.OAuthState = uuid.New().String()

	if err := u.sessions.Put(ctx, session); err != nil {
		return "", fmt.Errorf("failed to store login session: %w", err)
	}

	return u.oauth.AuthURL(session.OAuthState), nil
}

func (u *authUseCaseImpl) CompleteGoogleLogin(ctx context.Context, session *model.Session, state, code string) (*model.User, error) {
	if session.OAuthState == "" || state != session.OAuthState {
		return nil, ErrStateMismatch
	}
	session.OAuthState = ""

	profile, err := u.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google login failed: %w", err)
	}

	user, err := u.users.GetByGoogleID(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user by google id: %w", err)
	}

	if user == nil {
		user = &model.User{
			ID:            uuid.New().String(),
			GoogleID:      profile.ID,
			DisplayName:   profile.Name,
			Email:         profile.Email,
			Avatar:        profile.Picture,
			Points:        model.DefaultPoints,
			DailyAttempts: model.DefaultDailyAttempts,
		}

		// Best-effort merge of the anonymous record the visitor used
		// before logging in. A missing record is not an error.
		if session.AnonymousID != "" {
			anonymous, err := u.users.GetByID(ctx, session.AnonymousID)
			if err != nil {
				return nil, fmt.Errorf("failed to load anonymous user for merge: %w", err)
			}
			if anonymous != nil {
				log.Printf("🔀 merging anonymous user %s into new google user %s", anonymous.ID, user.ID)
				user.Points = anonymous.Points
				user.DailyAttempts = anonymous.DailyAttempts
				if err := u.users.Delete(ctx, anonymous.ID); err != nil {
					return nil, fmt.Errorf("failed to delete merged anonymous user: %w", err)
				}
			}
		}

		if err := u.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create google user: %w", err)
		}
	}

	// The linkage token is single-use: it never survives the flow
	// that consumed it.
	session.AnonymousID = ""
	session.UserID = user.ID
	if err := u.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store authenticated session: %w", err)
	}

	return user, nil
}

func (u *authUseCaseImpl) CurrentUser(ctx context.Context, session *model.Session) (*model.User, error) {
	if session == nil || session.UserID == "" {
		return nil, ErrNotAuthenticated
	}

	user, err := u.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if user == nil || !user.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}

func (u *authUseCaseImpl) Logout(ctx context.Context, session *model.Session) error {
	if session == nil {
		return nil
	}
	if err := u.sessions.Delete(ctx, session.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
