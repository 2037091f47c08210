// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query filters a loaded paper set by free text.
package query

import (
	"strings"

	"github.com/pdiddy/paperlist/pkg/types"
)

// Filter returns the papers whose Title, Authors, or Journal contains q as
// a case-insensitive substring, preserving source order. The query is
// trimmed first; an empty result of trimming returns papers unchanged.
// Filter never mutates its input and applies no ranking; every match is
// equal.
func Filter(papers []types.Paper, q string) []types.Paper {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return papers
	}

	var matched []types.Paper
	for _, p := range papers {
		if matches(p, q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// matches expects q to be lowercased already.
func matches(p types.Paper, q string) bool {
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Authors), q) ||
		strings.Contains(strings.ToLower(p.Journal), q)
}
