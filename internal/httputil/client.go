// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the fetch operations.
package httputil

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/roshkjr/pdbefetch/pkg/types"
)

// DefaultTimeout bounds archive requests when the configuration does not
// set one. The archive serves static files, so a single bound covers both
// connection setup and body transfer.
const DefaultTimeout = 60 * time.Second

// NewClient returns an HTTP client with the configured request timeout
// applied. A zero timeout falls back to DefaultTimeout.
func NewClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Get issues a single GET against url with the given User-Agent. The entire
// request is determined by the URL; no query parameters or auth headers are
// added. Callers own the response body. Requests are never retried.
func Get(client *http.Client, url, userAgent string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	return resp, nil
}

// Drain discards and closes a response body so the connection can be reused.
func Drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
