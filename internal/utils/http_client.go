package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-login-server-client"

// HTTPClient embeds *resty.Client so every resty method is available
// directly on it.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client bound to baseURL. Every
// request is limited by timeout and identified by the client's User-Agent.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
