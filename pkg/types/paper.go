// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data contracts shared across paperlist packages.
package types

// Paper is one row of the published reading-list spreadsheet. All fields
// are plain strings taken verbatim from the source; any of them may be
// empty. A paper carries no identity beyond its position in the source,
// and a loaded set is never mutated after ingestion.
type Paper struct {
	// Journal is the venue the paper appeared in.
	Journal string `json:"journal" yaml:"journal"`

	// Organization is the group or lab behind the paper.
	Organization string `json:"organization" yaml:"organization"`

	// PublishedDate is the publication date as written in the source.
	PublishedDate string `json:"published_date" yaml:"published_date"`

	// Authors lists the authors as a single source-formatted string.
	Authors string `json:"authors" yaml:"authors"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// TitleURL links to the paper landing page.
	TitleURL string `json:"title_url" yaml:"title_url"`

	// PdfURL links directly to the PDF.
	PdfURL string `json:"pdf_url" yaml:"pdf_url"`

	// VolURL links to the containing volume or issue.
	VolURL string `json:"vol_url" yaml:"vol_url"`

	// VolTitle is the title of the containing volume or issue.
	VolTitle string `json:"vol_title" yaml:"vol_title"`
}
