package gw2

import (
	"net/http"
	"time"
)

func NewHTTPClient(timeout time.Duration, userAgent string) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTripper{tripper: http.DefaultTransport, userAgent: userAgent},
	}
}

type userAgentTripper struct {
	tripper   http.RoundTripper
	userAgent string
}

func (t *userAgentTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.tripper.RoundTrip(req)
}
