// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest loads the published reading-list spreadsheet and converts
// it into papers. A load is all-or-nothing: one fetch, one parse, and any
// failure leaves the caller with no records.
package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/paperlist/internal/httputil"
	"github.com/pdiddy/paperlist/pkg/types"
)

// PlaceholderURL is the value shipped in the example config. Loading with
// it still in place is treated the same as no URL at all.
const PlaceholderURL = "https://docs.google.com/spreadsheets/d/e/PASTE-PUBLISHED-SHEET-ID/pub?output=csv"

const defaultMaxBodyBytes = 16 << 20

// fieldNames are the nine required header names in normalized form
// (lowercased, spaces/underscores/hyphens removed). Header-to-field
// mapping is by name, not column position, so the sheet's columns may be
// reordered freely.
var fieldNames = []string{
	"journal",
	"organization",
	"publisheddate",
	"authors",
	"title",
	"titleurl",
	"pdfurl",
	"volurl",
	"voltitle",
}

// Load fetches cfg.URL and parses the body into papers in source row order.
// Warnings about skipped rows are written to w. Failures are classified as
// ErrNotConfigured, *FetchError, or *ParseError; all of them abort the
// load whole.
func Load(ctx context.Context, client *http.Client, cfg types.SourceConfig, w io.Writer) ([]types.Paper, error) {
	if err := checkURL(cfg.URL); err != nil {
		return nil, err
	}

	maxBytes := cfg.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBodyBytes
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL, nil)
	if err != nil {
		return nil, &FetchError{URL: cfg.URL, Err: err}
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	body, status, err := httputil.GetText(client, req, maxBytes)
	if err != nil {
		return nil, &FetchError{URL: cfg.URL, Err: err}
	}
	if status < 200 || status >= 300 {
		return nil, &FetchError{URL: cfg.URL, StatusCode: status}
	}

	papers, skipped, err := Parse(strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		fmt.Fprintf(w, "warning: skipped %d row(s) with a field count different from the header\n", skipped)
	}
	return papers, nil
}

// checkURL rejects empty, placeholder, and non-absolute-http(s) URLs
// before any network access.
func checkURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("%w: set source.url in the config file or PAPERLIST_SOURCE_URL", ErrNotConfigured)
	}
	if raw == PlaceholderURL {
		return fmt.Errorf("%w: source.url is still the shipped placeholder", ErrNotConfigured)
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q is not an absolute http(s) URL", ErrNotConfigured, raw)
	}
	return nil
}

// Parse reads CSV from r. The first row is the header; every following row
// with the same field count becomes one paper, rows with a different count
// are skipped and counted. Quoted fields may contain commas, doubled
// quotes, and newlines. Header-only or empty input yields no papers and no
// error.
func Parse(r io.Reader) ([]types.Paper, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, parseError(err)
	}

	cols, err := mapHeader(header)
	if err != nil {
		return nil, 0, err
	}

	var papers []types.Paper
	skipped := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, parseError(err)
		}
		if len(rec) != len(header) {
			skipped++
			continue
		}
		papers = append(papers, paperFrom(rec, cols))
	}
	return papers, skipped, nil
}

// mapHeader resolves each required field name to its column index. The
// first matching column wins if a name repeats.
func mapHeader(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			// Published Google Sheets exports lead with a BOM.
			h = strings.TrimPrefix(h, "\ufeff")
		}
		n := normalizeHeader(h)
		if _, ok := idx[n]; !ok {
			idx[n] = i
		}
	}

	var missing []string
	for _, name := range fieldNames {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &ParseError{Err: fmt.Errorf("header is missing field(s): %s", strings.Join(missing, ", "))}
	}
	return idx, nil
}

// normalizeHeader lowercases and drops separators so "Published Date",
// "published_date", and "PublishedDate" all name the same field.
func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '_' || r == '-' {
			return -1
		}
		return r
	}, s)
}

func paperFrom(rec []string, cols map[string]int) types.Paper {
	get := func(name string) string { return rec[cols[name]] }
	return types.Paper{
		Journal:       get("journal"),
		Organization:  get("organization"),
		PublishedDate: get("publisheddate"),
		Authors:       get("authors"),
		Title:         get("title"),
		TitleURL:      get("titleurl"),
		PdfURL:        get("pdfurl"),
		VolURL:        get("volurl"),
		VolTitle:      get("voltitle"),
	}
}

func parseError(err error) error {
	var ce *csv.ParseError
	if errors.As(err, &ce) {
		return &ParseError{Line: ce.Line, Err: ce.Err}
	}
	return &ParseError{Err: err}
}
