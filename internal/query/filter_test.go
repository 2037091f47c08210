// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"strings"
	"testing"

	"github.com/pdiddy/paperlist/pkg/types"
)

func testPapers() []types.Paper {
	return []types.Paper{
		{Title: "Attention Is All You Need", Authors: "Vaswani; Shazeer", Journal: "NeurIPS"},
		{Title: "Deep Residual Learning", Authors: "He; Zhang", Journal: "CVPR"},
		{Title: "BERT: Pre-training of Deep Bidirectional Transformers", Authors: "Devlin", Journal: "NAACL"},
		{Title: "Scaling Laws for Neural Language Models", Authors: "Kaplan; McCandlish", Journal: "arXiv"},
	}
}

func titles(papers []types.Paper) []string {
	out := make([]string, len(papers))
	for i, p := range papers {
		out[i] = p.Title
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name       string
		q          string
		wantTitles []string
	}{
		{"title match", "attention", []string{"Attention Is All You Need"}},
		{"authors match", "zhang", []string{"Deep Residual Learning"}},
		{"journal match", "arxiv", []string{"Scaling Laws for Neural Language Models"}},
		{"case insensitive", "BERT", []string{"BERT: Pre-training of Deep Bidirectional Transformers"}},
		{"surrounding whitespace trimmed", "  attention  ", []string{"Attention Is All You Need"}},
		{"order preserved across fields", "deep", []string{
			"Deep Residual Learning",
			"BERT: Pre-training of Deep Bidirectional Transformers",
		}},
		{"no match", "quantum", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(Filter(testPapers(), tt.q))
			if len(got) != len(tt.wantTitles) {
				t.Fatalf("Filter(%q) = %v, want %v", tt.q, got, tt.wantTitles)
			}
			for i := range got {
				if got[i] != tt.wantTitles[i] {
					t.Errorf("Filter(%q)[%d] = %q, want %q", tt.q, i, got[i], tt.wantTitles[i])
				}
			}
		})
	}
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	papers := testPapers()
	for _, q := range []string{"", "   ", "\t\n"} {
		got := Filter(papers, q)
		if len(got) != len(papers) {
			t.Fatalf("Filter(%q) dropped records: %d of %d", q, len(got), len(papers))
		}
		// Identity means the same backing slice, not a copy.
		if &got[0] != &papers[0] {
			t.Errorf("Filter(%q) copied the input instead of returning it", q)
		}
	}
}

func TestFilter_MatchesContainQuery(t *testing.T) {
	papers := testPapers()
	for _, q := range []string{"a", "deep", "NE", "e;"} {
		lq := strings.ToLower(q)
		for _, p := range Filter(papers, q) {
			if !strings.Contains(strings.ToLower(p.Title), lq) &&
				!strings.Contains(strings.ToLower(p.Authors), lq) &&
				!strings.Contains(strings.ToLower(p.Journal), lq) {
				t.Errorf("Filter(%q) kept non-matching paper %q", q, p.Title)
			}
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	papers := testPapers()
	before := titles(papers)
	Filter(papers, "deep")
	after := titles(papers)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input mutated at %d: %q -> %q", i, before[i], after[i])
		}
	}
}
