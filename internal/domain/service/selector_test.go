package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Wayn-App/internal/domain/model"
)

func activePlace(id int, category string, audiences ...string) model.Place {
	if len(audiences) == 0 {
		audiences = []string{model.AudienceIndividual, model.AudienceGroup}
	}
	return model.Place{
		ID:          id,
		Name:        "مكان",
		Category:    category,
		SuitableFor: audiences,
		IsActive:    true,
	}
}

func TestFilterDropsInactiveAndExcluded(t *testing.T) {
	selector := NewSuggestionSelector(SeasonalPolicy{Active: false})

	inactive := activePlace(1, model.CategorySpecialtyCafe)
	inactive.IsActive = false
	places := []model.Place{
		inactive,
		activePlace(2, model.CategorySpecialtyCafe),
		activePlace(3, model.CategorySpecialtyCafe),
	}

	query := &model.SuggestionQuery{Exclude: []int{3}}
	candidates := selector.Filter(places, query)

	require.Len(t, candidates, 1)
	assert.Equal(t, 2, candidates[0].ID)
}

func TestFilterByAudience(t *testing.T) {
	selector := NewSuggestionSelector(SeasonalPolicy{Active: false})

	places := []model.Place{
		activePlace(1, model.CategoryBreakfast, model.AudienceFamily, model.AudienceGroup),
		activePlace(2, model.CategoryBreakfast, model.AudienceCouple),
	}

	query := &model.SuggestionQuery{UserType: model.AudienceFamily}
	candidates := selector.Filter(places, query)

	require.Len(t, candidates, 1)
	assert.Equal(t, 1, candidates[0].ID)
}

func TestFilterAppliesSeasonalPolicy(t *testing.T) {
	selector := NewSuggestionSelector(SeasonalPolicy{Active: true})

	places := []model.Place{
		activePlace(1, model.CategoryLandmark),
		activePlace(2, model.CategorySpecialtyCafe),
	}

	candidates := selector.Filter(places, &model.SuggestionQuery{})

	require.Len(t, candidates, 1)
	assert.Equal(t, 2, candidates[0].ID)
}

func TestPickReturnsDistinctPlaces(t *testing.T) {
	selector := NewSuggestionSelector(SeasonalPolicy{Active: false})

	candidates := []model.Place{
		activePlace(1, model.CategorySpecialtyCafe),
		activePlace(2, model.CategorySpecialtyCafe),
		activePlace(3, model.CategorySpecialtyCafe),
	}

	// The draw is random; repeat to catch duplicates slipping through.
	for i := 0; i < 50; i++ {
		picked, err := selector.Pick(candidates)
		require.NoError(t, err)
		require.Len(t, picked, SuggestionCount)
		assert.NotEqual(t, picked[0].ID, picked[1].ID)
	}
}

func TestPickExactPoolSize(t *testing.T) {
	selector := NewSuggestionSelector(SeasonalPolicy{Active: false})

	candidates := []model.Place{
		activePlace(1, model.CategorySpecialtyCafe),
		activePlace(2, model.CategorySpecialtyCafe),
	}

	picked, err := selector.Pick(candidates)

	require.NoError(t, err)
	ids := []int{picked[0].ID, picked[1].ID}
	assert.ElementsMatch(t, []int{1, 2}, ids)
}

func TestPickReportsNotEnoughCandidates(t *testing.T) {
	selector := NewSuggestionSelector(SeasonalPolicy{Active: false})

	_, err := selector.Pick([]model.Place{activePlace(1, model.CategorySpecialtyCafe)})
	assert.ErrorIs(t, err, ErrNotEnoughCandidates)

	_, err = selector.Pick(nil)
	assert.ErrorIs(t, err, ErrNotEnoughCandidates)
}
