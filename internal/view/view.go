// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package view owns the presentation state: the loaded paper set, the
// current query, and the current page. All reads go through snapshots
// computed under one lock, so every consumer sees a consistent
// (records, query, page) triple.
package view

import (
	"sync"

	"github.com/pdiddy/paperlist/internal/paginate"
	"github.com/pdiddy/paperlist/internal/query"
	"github.com/pdiddy/paperlist/pkg/types"
)

// State tracks the load lifecycle of the paper set.
type State string

const (
	// StateLoading means a load is in flight and the set is unpopulated.
	StateLoading State = "loading"

	// StateReady means the last load succeeded.
	StateReady State = "ready"

	// StateFailed means the last load failed and the set is empty. Only a
	// fresh load clears this.
	StateFailed State = "failed"
)

// Snapshot is a consistent read of the view: the page of papers matching
// the query, plus the counts the controls need.
type Snapshot struct {
	State      State
	Err        error
	Query      string
	Papers     []types.Paper
	Page       int
	TotalPages int

	// Total is the size of the loaded set, Filtered the size after the
	// query is applied.
	Total    int
	Filtered int
}

// View is the single owner of presentation state. Zero value is not
// usable; construct with New.
type View struct {
	mu       sync.Mutex
	pageSize int

	state   State
	loadErr error
	papers  []types.Paper
	q       string
	page    int
}

// New returns a View in the loading state showing page 1.
func New(pageSize int) *View {
	if pageSize < 1 {
		pageSize = paginate.DefaultPageSize
	}
	return &View{pageSize: pageSize, state: StateLoading, page: 1}
}

// BeginLoad discards the current set and enters the loading state. Query
// and page reset too: a reload starts the session over, nothing is merged.
func (v *View) BeginLoad() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = StateLoading
	v.loadErr = nil
	v.papers = nil
	v.q = ""
	v.page = 1
}

// FinishLoad records the outcome of a load. On error the set stays empty
// and the view enters the failed state.
func (v *View) FinishLoad(papers []types.Paper, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state = StateFailed
		v.loadErr = err
		v.papers = nil
		return
	}
	v.state = StateReady
	v.loadErr = nil
	v.papers = papers
}

// Apply updates the query and requested page, then returns a snapshot.
// A changed query resets the page to 1 and ignores the page argument;
// this is the one place that rule lives. page 0 means "keep the current
// page". A stale page past the end of the filtered set is not corrected;
// it shows up as an empty page, matching the pagination contract.
func (v *View) Apply(q string, page int) Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	if q != v.q {
		v.q = q
		v.page = 1
	} else if page > 0 {
		v.page = page
	}
	return v.snapshotLocked()
}

// Snapshot returns the current state without changing query or page.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *View) snapshotLocked() Snapshot {
	filtered := query.Filter(v.papers, v.q)
	papers, totalPages := paginate.Slice(filtered, v.pageSize, v.page)
	return Snapshot{
		State:      v.state,
		Err:        v.loadErr,
		Query:      v.q,
		Papers:     papers,
		Page:       v.page,
		TotalPages: totalPages,
		Total:      len(v.papers),
		Filtered:   len(filtered),
	}
}
