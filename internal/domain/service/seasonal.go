package service

import (
	"regexp"
	"time"

	"Wayn-App/internal/domain/model"
)

// outdoorKeywords matches descriptions of outdoor-themed activities
// (beach, park, island, open-air, water games).
var outdoorKeywords = regexp.MustCompile(`شاطئ|حديقة|جزيرة|هواء طلق|ألعاب مائية`)

// SeasonalPolicy excludes outdoor-themed content during the summer
// window. It is a value computed once at configuration load and passed
// into the selector, so tests can build one for any date.
type SeasonalPolicy struct {
	Active bool
}

// NewSeasonalPolicy evaluates the fixed calendar rule (May 15 – Sep 25
// inclusive) for the given date.
func NewSeasonalPolicy(date time.Time) SeasonalPolicy {
	return SeasonalPolicy{Active: inSummerWindow(date)}
}

func inSummerWindow(date time.Time) bool {
	month := int(date.Month())
	day := date.Day()
	return (month == 5 && day >= 15) || (month > 5 && month < 9) || (month == 9 && day <= 25)
}

// Allows reports whether the place may be suggested under this policy.
// When the window is active the landmark category is excluded entirely
// and entertainment places with an outdoor-keyword description are
// dropped; everything else passes through.
func (p SeasonalPolicy) Allows(place *model.Place) bool {
	if !p.Active {
		return true
	}
	switch place.Category {
	case model.CategoryLandmark:
		return false
	case model.CategoryEntertainment:
		return !outdoorKeywords.MatchString(place.Description)
	}
	return true
}
