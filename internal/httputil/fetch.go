// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across commands.
package httputil

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/paperlist/pkg/types"
)

// DefaultTimeout applies when the config leaves the HTTP timeout unset.
const DefaultTimeout = 30 * time.Second

const maxRedirects = 3

// NewClient builds an HTTP client from cfg. Redirects are capped so a
// misconfigured source cannot bounce the loader around indefinitely.
func NewClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
}

// GetText performs req and reads at most maxBytes of the response body as
// text. It returns the body and status code; a non-2xx status is not an
// error here; the caller decides how to classify it. The request is made
// exactly once: loads either succeed or fail whole.
func GetText(client *http.Client, req *http.Request, maxBytes int64) (string, int, error) {
	req.Header.Set("Accept", "text/csv,text/plain;q=0.9,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes))
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("reading body: %w", err)
	}
	return string(body), resp.StatusCode, nil
}
