package model

// SuggestionQuery holds every filter the suggestions endpoint accepts.
type SuggestionQuery struct {
	UserType    string   `json:"userType"`    // optional: audience type the visitor picked
	Interests   []string `json:"interests"`   // optional: categories the visitor is interested in
	Exclude     []int    `json:"exclude"`     // place ids already shown to this visitor
	SpendPoints bool     `json:"spendPoints"` // visitor chose to trade 3 points for another round
}

// HasInterests reports whether the visitor restricted the categories.
func (q *SuggestionQuery) HasInterests() bool {
	return len(q.Interests) > 0
}

// Excludes reports whether the place id was already shown.
func (q *SuggestionQuery) Excludes(id int) bool {
	for _, ex := range q.Exclude {
		if ex == id {
			return true
		}
	}
	return false
}

// SuggestionResponse is the success payload of GET /api/suggestions.
type SuggestionResponse struct {
	Suggestions   []PlaceCard `json:"suggestions"`
	Points        int         `json:"points"`
	DailyAttempts int         `json:"dailyAttempts"`
}

// IdentityKind tags how (or whether) the request resolved to a user.
type IdentityKind int

const (
	// IdentityMissing means no session user and no anonymous id.
	IdentityMissing IdentityKind = iota
	// IdentityAnonymous means the request carried an anonymous id.
	IdentityAnonymous
	// IdentityAuthenticated means the session resolved to a Google-linked user.
	IdentityAuthenticated
)

// Identity is the explicit result of resolving "who is asking":
// session user if present, else the anonymous id from the query,
// else missing. Downstream code consumes it uniformly instead of
// re-deriving it from ambient request state.
type Identity struct {
	Kind   IdentityKind
	UserID string
}

// MissingIdentity is the resolution result for a request with no
// usable identity at all.
var MissingIdentity = Identity{Kind: IdentityMissing}

// AnonymousSessionRequest is the body of POST /api/auth/session.
type AnonymousSessionRequest struct {
	AnonymousID string `json:"anonymousId"`
}

// AnonymousSessionResponse echoes the (possibly newly created)
// anonymous identity back to the client.
type AnonymousSessionResponse struct {
	AnonymousID string `json:"anonymousId"`
	Points      int    `json:"points"`
}
