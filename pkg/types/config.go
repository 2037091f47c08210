// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that touch the network.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paperlist/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SourceConfig holds settings for the spreadsheet source.
type SourceConfig struct {
	HTTPConfig `yaml:",inline"`

	// URL is the published CSV export to load. There is no usable default;
	// an empty or placeholder value fails before any network access.
	URL string `json:"url" yaml:"url"`

	// MaxBodyBytes caps how much of the response body is read (default 16 MiB).
	MaxBodyBytes int64 `json:"max_body_bytes" yaml:"max_body_bytes"`
}

// ViewConfig holds settings for filtering and pagination of the loaded set.
type ViewConfig struct {
	// PageSize is the number of papers per page (default 20).
	PageSize int `json:"page_size" yaml:"page_size"`
}

// ServeConfig holds settings for the web interface.
type ServeConfig struct {
	// Port is the TCP port the HTTP server listens on (default 8787).
	Port string `json:"port" yaml:"port"`
}
