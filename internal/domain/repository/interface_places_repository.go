package repository

import (
	"context"

	"Wayn-App/internal/domain/model"
)

// PlacesRepository reads the curated place catalog. Rows are created
// and edited by the catalog management tooling, not by this service;
// the one write this service performs is the image URL cache fill.
type PlacesRepository interface {
	// GetByID returns a single catalog row.
	GetByID(ctx context.Context, id int) (*model.Place, error)

	// FindActiveByCategories returns every active row, restricted to
	// the given categories when the slice is non-empty. Audience,
	// exclusion and seasonal filtering happen in the selector, in
	// memory.
	FindActiveByCategories(ctx context.Context, categories []string) ([]model.Place, error)

	// UpdateImageURL caches a resolved image URL onto the row.
	UpdateImageURL(ctx context.Context, id int, imageURL string) error
}
