package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"Wayn-App/internal/domain/model"
)

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// Client drives the Google OAuth 2.0 authorization-code flow.
type Client struct {
	config     *oauth2.Config
	httpClient *http.Client
}

// NewClient creates a client for the registered application.
// redirectURL must exactly match the URI registered in the Google
// console.
func NewClient(clientID, clientSecret, redirectURL string) *Client {
	return &Client{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthURL returns the consent-screen URL for the given CSRF state.
func (c *Client) AuthURL(state string) string {
	return c.config.AuthCodeURL(state)
}

// Exchange trades the callback code for a token and fetches the
// user's profile with it.
func (c *Client) Exchange(ctx context.Context, code string) (*model.GoogleProfile, error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", userinfoEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo request: %w", err)
	}
	token.SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned error status: %s", resp.Status)
	}

	var profile model.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse userinfo response: %w", err)
	}

	if profile.ID == "" {
		return nil, fmt.Errorf("userinfo response carried no account id")
	}

	return &profile, nil
}
