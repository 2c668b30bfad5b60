package model

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"
)

// Place is a curated catalog entry shown to visitors as a suggestion.
type Place struct {
	ID            int        `json:"id" db:"id"`
	Name          string     `json:"name" db:"name"`
	Category      string     `json:"category" db:"category"`
	Description   string     `json:"description" db:"description"`
	LocationName  string     `json:"locationName" db:"location_name"`
	GoogleMapsURL string     `json:"googleMapsUrl" db:"google_maps_url"`
	ImageURL      string     `json:"imageUrl" db:"image_url"`
	Images        []string   `json:"images,omitempty" db:"images"`
	Tags          []string   `json:"tags,omitempty" db:"tags"`
	SuitableFor   []string   `json:"suitableFor" db:"suitable_for"`
	Events        []string   `json:"events,omitempty" db:"events"`
	IsActive      bool       `json:"isActive" db:"is_active"`
	Priority      int        `json:"priority" db:"priority"`
	Location      *Geometry  `json:"location,omitempty" db:"location"`
	CreatedAt     *time.Time `json:"createdAt,omitempty" db:"created_at"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty" db:"updated_at"`
}

// HasImage reports whether a real image URL has already been cached on
// the catalog row.
func (p *Place) HasImage() bool {
	return p.ImageURL != ""
}

// SuitableForAudience reports whether the place is marked as suitable
// for the given audience type (individual, couple, family, group).
func (p *Place) SuitableForAudience(audience string) bool {
	for _, a := range p.SuitableFor {
		if a == audience {
			return true
		}
	}
	return false
}

// MapsLink returns the curated Google Maps URL, falling back to a link
// built from the stored coordinates when the catalog row has none.
func (p *Place) MapsLink() string {
	if p.GoogleMapsURL != "" {
		return p.GoogleMapsURL
	}
	if p.Location != nil && len(p.Location.Coordinates) >= 2 {
		pt := orb.Point{p.Location.Coordinates[0], p.Location.Coordinates[1]}
		return fmt.Sprintf("https://www.google.com/maps?q=%f,%f", pt.Lat(), pt.Lon())
	}
	return ""
}

// Geometry mirrors the GeoJSON point stored on a catalog row.
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

// PlaceCard is the trimmed view of a place returned by the suggestions
// endpoint (the client never sees the full catalog row).
type PlaceCard struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	GoogleMapsURL string `json:"googleMapsUrl"`
	ImageURL      string `json:"imageUrl"`
}

// ToCard converts a catalog row into its response view, with the image
// URL the resolver settled on.
func (p *Place) ToCard(imageURL string) PlaceCard {
	return PlaceCard{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Description:   p.Description,
		GoogleMapsURL: p.MapsLink(),
		ImageURL:      imageURL,
	}
}
