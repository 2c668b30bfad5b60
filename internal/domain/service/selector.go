package service

import (
	"errors"
	"math/rand"
	"time"

	"Wayn-App/internal/domain/model"
)

// SuggestionCount is how many places one response contains.
const SuggestionCount = 2

// ErrNotEnoughCandidates means fewer than SuggestionCount places
// matched the filters. A normal outcome, not a failure: the catalog
// simply has nothing new for these preferences right now.
var ErrNotEnoughCandidates = errors.New("لا توجد أماكن جديدة كافية تطابق تفضيلاتك حاليًا.")

// SuggestionSelector filters the candidate pool and draws a small
// random non-repeating subset from it.
type SuggestionSelector struct {
	seasonal SeasonalPolicy
}

// NewSuggestionSelector creates a selector bound to the seasonal
// policy computed at startup.
func NewSuggestionSelector(seasonal SeasonalPolicy) *SuggestionSelector {
	return &SuggestionSelector{seasonal: seasonal}
}

// Filter narrows the fetched rows to the ones this request may see:
// active only, audience match when requested, not previously shown,
// and permitted by the seasonal policy. Category narrowing already
// happened in the repository query.
func (s *SuggestionSelector) Filter(places []model.Place, query *model.SuggestionQuery) []model.Place {
	var candidates []model.Place
	for i := range places {
		place := &places[i]
		if !place.IsActive {
			continue
		}
		if query.UserType != "" && !place.SuitableForAudience(query.UserType) {
			continue
		}
		if query.Excludes(place.ID) {
			continue
		}
		if !s.seasonal.Allows(place) {
			continue
		}
		candidates = append(candidates, *place)
	}
	return candidates
}

// Pick draws SuggestionCount distinct places uniformly at random from
// the candidate pool, without replacement and without consulting the
// priority field. The randomness source is request-scoped and
// non-cryptographic.
func (s *SuggestionSelector) Pick(candidates []model.Place) ([]model.Place, error) {
	if len(candidates) < SuggestionCount {
		return nil, ErrNotEnoughCandidates
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	picked := make([]model.Place, 0, SuggestionCount)
	used := make(map[int]bool)
	for len(picked) < SuggestionCount {
		idx := rng.Intn(len(candidates))
		if used[idx] {
			continue
		}
		used[idx] = true
		picked = append(picked, candidates[idx])
	}
	return picked, nil
}
