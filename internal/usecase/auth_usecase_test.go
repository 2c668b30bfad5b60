package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Wayn-App/internal/domain/model"
)

func googleProfile() *model.GoogleProfile {
	return &model.GoogleProfile{
		ID:      "google-123",
		Name:    "سالم العتيبي",
		Email:   "salem@example.com",
		Picture: "https://lh3.googleusercontent.com/photo.jpg",
	}
}

func TestAnonymousSessionCreatesFreshUser(t *testing.T) {
	users := newFakeUsersRepo()
	uc := NewAuthUseCase(users, newFakeSessionsRepo(), &fakeOAuth{})

	resp, err := uc.AnonymousSession(context.Background(), "")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AnonymousID)
	assert.Equal(t, model.DefaultPoints, resp.Points)

	stored := users.stored(resp.AnonymousID)
	require.NotNil(t, stored)
	assert.Equal(t, model.DefaultDailyAttempts, stored.DailyAttempts)
}

func TestAnonymousSessionReusesKnownUser(t *testing.T) {
	existing := model.NewAnonymousUser("anon-1", time.Now())
	existing.Points = 7
	users := newFakeUsersRepo(existing)
	uc := NewAuthUseCase(users, newFakeSessionsRepo(), &fakeOAuth{})

	resp, err := uc.AnonymousSession(context.Background(), "anon-1")

	require.NoError(t, err)
	assert.Equal(t, "anon-1", resp.AnonymousID)
	assert.Equal(t, 7, resp.Points)
}

func TestAnonymousSessionReplacesStaleID(t *testing.T) {
	users := newFakeUsersRepo()
	uc := NewAuthUseCase(users, newFakeSessionsRepo(), &fakeOAuth{})

	resp, err := uc.AnonymousSession(context.Background(), "long-gone")

	require.NoError(t, err)
	assert.NotEqual(t, "long-gone", resp.AnonymousID)
	assert.NotEmpty(t, resp.AnonymousID)
}

func TestBeginGoogleLoginStashesStateAndToken(t *testing.T) {
	sessions := newFakeSessionsRepo()
	uc := NewAuthUseCase(newFakeUsersRepo(), sessions, &fakeOAuth{})
	session := &model.Session{ID: "sess-1"}

	url, err := uc.BeginGoogleLogin(context.Background(), session, "anon-1")

	require.NoError(t, err)
	assert.Contains(t, url, session.OAuthState)
	require.NotEmpty(t, session.OAuthState)

	stored, err := sessions.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "anon-1", stored.AnonymousID)
	assert.Equal(t, session.OAuthState, stored.OAuthState)
}

func TestCompleteGoogleLoginMergesAnonymousUser(t *testing.T) {
	anonymous := model.NewAnonymousUser("anon-1", time.Now())
	anonymous.Points = 5
	anonymous.DailyAttempts = 2
	users := newFakeUsersRepo(anonymous)
	sessions := newFakeSessionsRepo()
	uc := NewAuthUseCase(users, sessions, &fakeOAuth{profile: googleProfile()})

	session := &model.Session{ID: "sess-1", AnonymousID: "anon-1", OAuthState: "state-1"}
	user, err := uc.CompleteGoogleLogin(context.Background(), session, "state-1", "code-1")

	require.NoError(t, err)
	assert.Equal(t, "google-123", user.GoogleID)
	assert.Equal(t, 5, user.Points)
	assert.Equal(t, 2, user.DailyAttempts)

	// The merged anonymous record must stop resolving.
	assert.Nil(t, users.stored("anon-1"))

	stored, err := sessions.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, user.ID, stored.UserID)
	assert.Empty(t, stored.AnonymousID)
	assert.Empty(t, stored.OAuthState)
}

func TestCompleteGoogleLoginWithoutAnonymousRecord(t *testing.T) {
	users := newFakeUsersRepo()
	uc := NewAuthUseCase(users, newFakeSessionsRepo(), &fakeOAuth{profile: googleProfile()})

	session := &model.Session{ID: "sess-1", AnonymousID: "never-existed", OAuthState: "state-1"}
	user, err := uc.CompleteGoogleLogin(context.Background(), session, "state-1", "code-1")

	require.NoError(t, err)
	assert.Equal(t, model.DefaultPoints, user.Points)
	assert.Equal(t, model.DefaultDailyAttempts, user.DailyAttempts)
}

func TestCompleteGoogleLoginFindsExistingUser(t *testing.T) {
	existing := &model.User{ID: "user-1", GoogleID: "google-123", Points: 9, DailyAttempts: 1}
	users := newFakeUsersRepo(existing)
	uc := NewAuthUseCase(users, newFakeSessionsRepo(), &fakeOAuth{profile: googleProfile()})

	session := &model.Session{ID: "sess-1", OAuthState: "state-1"}
	user, err := uc.CompleteGoogleLogin(context.Background(), session, "state-1", "code-1")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, 9, user.Points)
}

func TestCompleteGoogleLoginReturningUserKeepsOwnCounters(t *testing.T) {
	// An anonymous token in the session must not overwrite the
	// counters of an account that already exists.
	anonymous := model.NewAnonymousUser("anon-1", time.Now())
	anonymous.Points = 5
	existing := &model.User{ID: "user-1", GoogleID: "google-123", Points: 9, DailyAttempts: 1}
	users := newFakeUsersRepo(anonymous, existing)
	uc := NewAuthUseCase(users, newFakeSessionsRepo(), &fakeOAuth{profile: googleProfile()})

	session := &model.Session{ID: "sess-1", AnonymousID: "anon-1", OAuthState: "state-1"}
	user, err := uc.CompleteGoogleLogin(context.Background(), session, "state-1", "code-1")

	require.NoError(t, err)
	assert.Equal(t, 9, user.Points)
	assert.NotNil(t, users.stored("anon-1"))
}

func TestCompleteGoogleLoginStateMismatch(t *testing.T) {
	uc := NewAuthUseCase(newFakeUsersRepo(), newFakeSessionsRepo(), &fakeOAuth{profile: googleProfile()})

	session := &model.Session{ID: "sess-1", OAuthState: "state-1"}
	_, err := uc.CompleteGoogleLogin(context.Background(), session, "forged", "code-1")

	assert.ErrorIs(t, err, ErrStateMismatch)
}

func TestCompleteGoogleLoginMissingState(t *testing.T) {
	uc := NewAuthUseCase(newFakeUsersRepo(), newFakeSessionsRepo(), &fakeOAuth{profile: googleProfile()})

	_, err := uc.CompleteGoogleLogin(context.Background(), &model.Session{ID: "sess-1"}, "", "code-1")

	assert.ErrorIs(t, err, ErrStateMismatch)
}

func TestCurrentUser(t *testing.T) {
	authenticated := &model.User{ID: "user-1", GoogleID: "google-123"}
	anonymous := model.NewAnonymousUser("anon-1", time.Now())
	users := newFakeUsersRepo(authenticated, anonymous)
	uc := NewAuthUseCase(users, newFakeSessionsRepo(), &fakeOAuth{})

	user, err := uc.CurrentUser(context.Background(), &model.Session{ID: "s", UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	_, err = uc.CurrentUser(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = uc.CurrentUser(context.Background(), &model.Session{ID: "s"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	// An anonymous record behind a session id is not a login.
	_, err = uc.CurrentUser(context.Background(), &model.Session{ID: "s", UserID: "anon-1"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestLogoutDeletesSession(t *testing.T) {
	sessions := newFakeSessionsRepo()
	require.NoError(t, sessions.Put(context.Background(), &model.Session{ID: "sess-1"}))
	uc := NewAuthUseCase(newFakeUsersRepo(), sessions, &fakeOAuth{})

	require.NoError(t, uc.Logout(context.Background(), &model.Session{ID: "sess-1"}))

	stored, err := sessions.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Nil(t, stored)

	// A request that never had a session is a no-op.
	require.NoError(t, uc.Logout(context.Background(), nil))
}
