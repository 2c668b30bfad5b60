package repository

import "context"

// ImageSearchProvider queries an external image search API for a photo
// matching the given phrase. An empty result set is reported as an
// error; the resolver degrades to its fallback URL either way.
type ImageSearchProvider interface {
	SearchImageURL(ctx context.Context, query string) (string, error)
}
