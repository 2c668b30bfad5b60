package model

import "time"

// SessionTTL matches the cookie lifetime of the original deployment.
const SessionTTL = 7 * 24 * time.Hour

// Session is a server-side session document, keyed by the id carried
// in the browser cookie.
//
// AnonymousID is the single-use linkage token: it is stashed when the
// OAuth redirect starts and consumed (cleared) by the callback when the
// anonymous record is merged into the new authenticated one.
type Session struct {
	ID          string    `json:"id" firestore:"-"`
	UserID      string    `json:"userId,omitempty" firestore:"userId,omitempty"`
	AnonymousID string    `json:"anonymousId,omitempty" firestore:"anonymousId,omitempty"`
	OAuthState  string    `json:"oauthState,omitempty" firestore:"oauthState,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt" firestore:"expiresAt"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}

// Expired reports whether the session is past its lifetime.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
