package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the adapter can use the full resty API
// on a client preconfigured for the config-sets REST API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a resty client with baseURL, a JSON Accept header
// and the given timeout. A non-empty token is sent as a bearer token on
// every request.
//
//	client := utils.NewHTTPClient("http://localhost:8000", 10*time.Second, "")
//	resp, err := client.R().Get("/api/configs")
func NewHTTPClient(baseURL string, timeout time.Duration, token string) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	if token != "" {
		c.SetAuthToken(token)
	}

	return &HTTPClient{Client: c}
}
