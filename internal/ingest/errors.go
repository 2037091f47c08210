// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"errors"
	"fmt"
)

// ErrNotConfigured reports a missing or placeholder source URL. It is
// returned before any network access so a fresh checkout fails fast
// instead of fetching a URL nobody set.
var ErrNotConfigured = errors.New("source URL not configured")

// FetchError reports a transport failure or non-success HTTP status while
// retrieving the source. A failed fetch aborts the whole load; there is no
// retry and no partial result.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports input that cannot be decomposed into rows and fields
// at all. A single row with the wrong field count is not a ParseError;
// such rows are skipped.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing source at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parsing source: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
