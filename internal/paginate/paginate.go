// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paginate slices an ordered paper set into fixed-size pages.
package paginate

import "github.com/pdiddy/paperlist/pkg/types"

// DefaultPageSize applies when the config leaves the page size unset.
const DefaultPageSize = 20

// TotalPages returns ceil(n/pageSize), or 0 when n is 0.
func TotalPages(n, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return (n + pageSize - 1) / pageSize
}

// Slice returns the papers on the 1-indexed page and the total page count.
// The window [(page-1)*pageSize, page*pageSize) is clamped to the valid
// index range, so a page past the end yields an empty slice, never an
// error. Slice does not correct stale page numbers; resetting the page
// when the underlying set changes is the caller's job.
func Slice(papers []types.Paper, pageSize, page int) ([]types.Paper, int) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := TotalPages(len(papers), pageSize)

	start := (page - 1) * pageSize
	if start >= len(papers) {
		return nil, total
	}
	end := start + pageSize
	if end > len(papers) {
		end = len(papers)
	}
	return papers[start:end], total
}
