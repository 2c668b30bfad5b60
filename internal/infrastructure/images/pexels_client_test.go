package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *PexelsClient {
	client := NewPexelsClient("test-api-key")
	client.baseURL = server.URL
	return client
}

func TestSearchImageURLReturnsFirstLargePhoto(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("Authorization"))
		assert.Equal(t, "aesthetic coffee shop kuwait", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"photos":[{"src":{"large":"https://images.pexels.com/photos/1/large.jpg"}}]}`))
	}))
	defer server.Close()

	url, err := newTestClient(server).SearchImageURL(context.Background(), "aesthetic coffee shop kuwait")

	require.NoError(t, err)
	assert.Equal(t, "https://images.pexels.com/photos/1/large.jpg", url)
}

func TestSearchImageURLEmptyResultIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"photos":[]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).SearchImageURL(context.Background(), "nothing matches this")

	assert.Error(t, err)
}

func TestSearchImageURLUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(server).SearchImageURL(context.Background(), "anything")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error status")
}

func TestSearchImageURLMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestClient(server).SearchImageURL(context.Background(), "anything")

	assert.Error(t, err)
}
