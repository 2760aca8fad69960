package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/brogergvhs/erosscans/internal/providers"
	"github.com/brogergvhs/erosscans/internal/resolver"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var Formats = []string{FormatText, FormatJSON, FormatYAML}

func ValidFormat(f string) bool {
	for _, v := range Formats {
		if v == f {
			return true
		}
	}
	return false
}

// Render writes v in the given format. Text output knows the result types
// of the adapter; anything else falls back to YAML.
func Render(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return renderText(w, v)
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

func renderText(w io.Writer, v any) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	switch x := v.(type) {
	case providers.Manga:
		fmt.Fprintf(tw, "ID:\t%s\n", x.ID)
		fmt.Fprintf(tw, "Title:\t%s\n", x.Title())
		if len(x.Titles) > 1 {
			fmt.Fprintf(tw, "Also known as:\t%s\n", strings.Join(x.Titles[1:], ", "))
		}
		fmt.Fprintf(tw, "Status:\t%s\n", x.Status)
		fmt.Fprintf(tw, "Author:\t%s\n", x.Author)
		fmt.Fprintf(tw, "Artist:\t%s\n", x.Artist)
		fmt.Fprintf(tw, "Genres:\t%s\n", tagLabels(x.Tags))
		fmt.Fprintf(tw, "Cover:\t%s\n", x.Image)
		if x.Description != "" {
			fmt.Fprintf(tw, "\n%s\n", x.Description)
		}

	case []providers.Chapter:
		fmt.Fprintln(tw, "#\tID\tNAME\tDATE")
		for _, c := range x {
			date := "-"
			if c.HasDate() {
				date = c.PublishedAt.Format("2006-01-02")
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Label(), c.ID, c.Name, date)
		}

	case providers.ChapterPages:
		for _, p := range x.Pages {
			fmt.Fprintln(tw, p)
		}

	case []resolver.Result:
		for _, r := range x {
			if r.Err != nil {
				fmt.Fprintf(tw, "# %s\tFAILED: %v\n", r.Chapter.ID, r.Err)
				continue
			}
			fmt.Fprintf(tw, "# %s\t%d pages\n", r.Chapter.ID, len(r.Pages.Pages))
			for _, p := range r.Pages.Pages {
				fmt.Fprintln(tw, p)
			}
		}

	case providers.SearchResults:
		writeItems(tw, x.Items)
		if x.HasNextPage {
			fmt.Fprintf(tw, "\nmore results: --page %d\n", x.NextPage)
		}

	case []providers.HomeSection:
		for i, s := range x {
			if i > 0 {
				fmt.Fprintln(tw)
			}
			fmt.Fprintf(tw, "== %s (%s)\n", s.Title, s.ID)
			writeItems(tw, s.Items)
		}

	case providers.SourceInfo:
		fmt.Fprintf(tw, "ID:\t%s\n", x.ID)
		fmt.Fprintf(tw, "Name:\t%s\n", x.Name)
		fmt.Fprintf(tw, "Version:\t%s\n", x.Version)
		fmt.Fprintf(tw, "Author:\t%s\n", x.Author)
		fmt.Fprintf(tw, "Base URL:\t%s\n", x.BaseURL)
		fmt.Fprintf(tw, "Language:\t%s\n", x.Language)

	default:
		return Render(w, FormatYAML, v)
	}

	return tw.Flush()
}

func writeItems(w io.Writer, items []providers.Manga) {
	if len(items) == 0 {
		fmt.Fprintln(w, "(no results)")
		return
	}
	for _, m := range items {
		fmt.Fprintf(w, "%s\t%s\n", m.ID, m.Title())
	}
}

func tagLabels(tags []providers.Tag) string {
	labels := make([]string, 0, len(tags))
	for _, t := range tags {
		labels = append(labels, t.Label)
	}
	return strings.Join(labels, ", ")
}
