package model

import "time"

// Defaults every new user starts with.
const (
	DefaultPoints        = 1
	DefaultDailyAttempts = 3
	SpendCost            = 3
)

// User is a visitor record: anonymous (no GoogleID) or linked to
// exactly one Google account. Both kinds share the points balance and
// the daily attempt counter.
type User struct {
	ID                 string     `json:"id" firestore:"-"`
	GoogleID           string     `json:"googleId,omitempty" firestore:"googleId,omitempty"`
	DisplayName        string     `json:"displayName,omitempty" firestore:"displayName,omitempty"`
	Email              string     `json:"email,omitempty" firestore:"email,omitempty"`
	Avatar             string     `json:"avatar,omitempty" firestore:"avatar,omitempty"`
	Points             int        `json:"points" firestore:"points"`
	LastSuggestionDate *time.Time `json:"lastSuggestionDate" firestore:"lastSuggestionDate"`
	DailyAttempts      int        `json:"dailyAttempts" firestore:"dailyAttempts"`
	CreatedAt          time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt" firestore:"updatedAt"`
}

// NewAnonymousUser creates an empty visitor record with the default
// balance (1 point, 3 attempts).
func NewAnonymousUser(id string, now time.Time) *User {
	return &User{
		ID:            id,
		Points:        DefaultPoints,
		DailyAttempts: DefaultDailyAttempts,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsAuthenticated reports whether the record is linked to a Google
// account.
func (u *User) IsAuthenticated() bool {
	return u.GoogleID != ""
}
