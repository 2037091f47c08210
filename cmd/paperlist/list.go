// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperlist/internal/httputil"
	"github.com/pdiddy/paperlist/internal/ingest"
	"github.com/pdiddy/paperlist/internal/paginate"
	"github.com/pdiddy/paperlist/internal/query"
	"github.com/pdiddy/paperlist/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Load the paper sheet and print one page of it",
	Long: `List fetches the configured spreadsheet export, filters it by the query,
and prints the requested page. Filtering matches the query as a
case-insensitive substring of the title, authors, or journal.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("query", "", "filter by free text (title, authors, or journal)")
	listCmd.Flags().Int("page", 1, "1-indexed page to print")
	listCmd.Flags().Int("page-size", 0, "papers per page (default from config, then 20)")
	listCmd.Flags().String("format", "table", "output format: table, json, or yaml")
	listCmd.Flags().String("source", "", "override the source URL from the config")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := sourceConfig()
	if src, _ := cmd.Flags().GetString("source"); src != "" {
		cfg.URL = src
	}

	pageSize, _ := cmd.Flags().GetInt("page-size")
	if pageSize <= 0 {
		pageSize = viewConfig().PageSize
	}
	page, _ := cmd.Flags().GetInt("page")
	q, _ := cmd.Flags().GetString("query")
	format, _ := cmd.Flags().GetString("format")

	client := httputil.NewClient(cfg.HTTPConfig)
	papers, err := ingest.Load(cmd.Context(), client, cfg, os.Stderr)
	if err != nil {
		return err
	}

	filtered := query.Filter(papers, q)
	slice, totalPages := paginate.Slice(filtered, pageSize, page)

	switch format {
	case "table":
		formatTable(os.Stdout, slice, page, totalPages, len(filtered), len(papers), q)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(slice)
	case "yaml":
		return yaml.NewEncoder(os.Stdout).Encode(slice)
	default:
		return fmt.Errorf("unknown format %q: use table, json, or yaml", format)
	}
}

// formatTable writes one page of papers as a human-readable table.
func formatTable(w io.Writer, papers []types.Paper, page, totalPages, filtered, total int, q string) {
	if filtered == 0 {
		if q != "" {
			fmt.Fprintf(w, "No papers match %q.\n", q)
		} else {
			fmt.Fprintln(w, "No papers loaded.")
		}
		return
	}
	if len(papers) == 0 {
		fmt.Fprintf(w, "Page %d is past the end (%d page(s) total).\n", page, totalPages)
		return
	}

	fmt.Fprintf(w, "%-4s  %-56s  %-24s  %-16s  %s\n", "#", "Title", "Authors", "Journal", "Published")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for i, p := range papers {
		fmt.Fprintf(w, "%-4d  %-56s  %-24s  %-16s  %s\n",
			i+1, truncate(p.Title, 56), truncate(p.Authors, 24), truncate(p.Journal, 16), p.PublishedDate)
	}

	fmt.Fprintf(w, "\npage %d/%d, showing %d of %d matching paper(s)", page, totalPages, len(papers), filtered)
	if q != "" {
		fmt.Fprintf(w, " (filter %q, %d loaded)", q, total)
	}
	fmt.Fprintln(w)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
