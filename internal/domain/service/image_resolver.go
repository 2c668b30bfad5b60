package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"Wayn-App/internal/domain/model"
	"Wayn-App/internal/domain/repository"
)

// ImageResolver guarantees every returned place has a displayable
// image URL: cached URL if present, external search on a miss with a
// write-through to the catalog, deterministic fallback when the search
// fails. Cached URLs are never re-fetched or expired.
type ImageResolver struct {
	search repository.ImageSearchProvider
	places repository.PlacesRepository
}

// NewImageResolver creates a resolver over the given search provider
// and catalog.
func NewImageResolver(search repository.ImageSearchProvider, places repository.PlacesRepository) *ImageResolver {
	return &ImageResolver{
		search: search,
		places: places,
	}
}

// Resolve returns an image URL for the place. The stored URL wins
// without any network call. On a cache miss the external API is
// queried with "<name> <category term>"; a hit is persisted back onto
// the row without blocking the response. A miss or failure degrades to
// the fallback URL, which is never persisted so the next request
// retries the real lookup.
func (r *ImageResolver) Resolve(ctx context.Context, place *model.Place) string {
	if place.HasImage() {
		return place.ImageURL
	}

	query := fmt.Sprintf("%s %s", place.Name, model.SearchTermFor(place.Category))
	imageURL, err := r.search.SearchImageURL(ctx, query)
	if err != nil {
		log.Printf("⚠️ image search failed for place %d: %v", place.ID, err)
		return FallbackImageURL(place.Category)
	}

	// Write-through cache fill; the response does not wait for it.
	go func(id int, url string) {
		if err := r.places.UpdateImageURL(context.Background(), id, url); err != nil {
			log.Printf("⚠️ image cache write-back failed for place %d: %v", id, err)
		}
	}(place.ID, imageURL)

	return imageURL
}

// FallbackImageURL builds the deterministic keyword-based fallback for
// a category. The sig parameter only defeats client-side caching of
// the same stock photo.
func FallbackImageURL(category string) string {
	term := model.SearchTermFor(category)
	if term == "kuwait" {
		term = "kuwait city"
	}
	keywords := strings.ReplaceAll(term, " ", ",")
	return fmt.Sprintf("https://source.unsplash.com/400x300/?%s&sig=%d", keywords, rand.Intn(100000))
}
