package infrastructures

import (
	"net/http"
	"time"
)

// AegisClient is the HTTP client for the upstream Aegis admin API. Every
// request carries the operator session cookie so the upstream treats the
// gateway like the browser console it replaces.
type AegisClient struct {
	HTTPClient    *http.Client
	BaseURL       string
	SessionCookie string
}

// NewAegisClient creates the upstream client from the loaded configuration.
func NewAegisClient() *AegisClient {
	return &AegisClient{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		BaseURL:       Config.AEGIS_API_BASE_URL,
		SessionCookie: Config.AEGIS_SESSION_COOKIE,
	}
}

// FullURL constructs the full upstream URL for a path.
func (c *AegisClient) FullURL(path string) string {
	return c.BaseURL + path
}
