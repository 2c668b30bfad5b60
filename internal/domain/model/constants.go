package model

// Catalog categories. The catalog is curated in Arabic; these values
// are stored verbatim in the places collection.
const (
	CategoryLandmark      = "معلم سياحي"
	CategoryMall          = "مجمع تجاري"
	CategoryEntertainment = "ترفيه ونشاط"
	CategorySpecialtyCafe = "مقهى متخصص"
	CategoryKuwaitiFood   = "مطعم كويتي"
	CategoryItalianFood   = "مطعم إيطالي"
	CategoryAsianFood     = "مطعم آسيوي"
	CategoryAmericanFood  = "مطعم أمريكي"
	CategoryBreakfast     = "مطعم فطور وعائلي"
)

// Audience types a place can be marked suitable for.
const (
	AudienceIndividual = "individual"
	AudienceCouple     = "couple"
	AudienceFamily     = "family"
	AudienceGroup      = "group"
)

// AllCategories lists every valid catalog category.
var AllCategories = []string{
	CategoryLandmark,
	CategoryMall,
	CategoryEntertainment,
	CategorySpecialtyCafe,
	CategoryKuwaitiFood,
	CategoryItalianFood,
	CategoryAsianFood,
	CategoryAmericanFood,
	CategoryBreakfast,
}

// CategorySearchTerms maps a catalog category to the English phrase
// used when querying the image search API.
var CategorySearchTerms = map[string]string{
	CategorySpecialtyCafe: "aesthetic coffee shop kuwait",
	CategoryItalianFood:   "italian food pasta pizza",
	CategoryKuwaitiFood:   "kuwaiti food traditional",
	CategoryAsianFood:     "asian food sushi",
	CategoryAmericanFood:  "burger fries restaurant",
	CategoryBreakfast:     "breakfast brunch cafe",
	CategoryMall:          "shopping mall interior kuwait",
	CategoryEntertainment: "kuwait entertainment fun activity",
	CategoryLandmark:      "kuwait landmark travel",
}

// SearchTermFor returns the image search phrase for a category, with a
// generic fallback for anything unmapped.
func SearchTermFor(category string) string {
	if term, ok := CategorySearchTerms[category]; ok {
		return term
	}
	return "kuwait"
}

// IsValidCategory reports whether the value is one of the fixed
// catalog categories.
func IsValidCategory(category string) bool {
	for _, c := range AllCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidAudience reports whether the value is a known audience type.
func IsValidAudience(audience string) bool {
	switch audience {
	case AudienceIndividual, AudienceCouple, AudienceFamily, AudienceGroup:
		return true
	}
	return false
}
