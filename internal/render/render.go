// Package render formats API results for terminal output. Rendering is a
// pure string transformation so the CLI commands stay printable-side-effect
// free until the final write.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/pagination"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/search"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
)

// Define styles using lipgloss
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Margin(1, 0, 0, 0)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	excerptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Margin(0, 0, 0, 2)

	advisoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Margin(1, 0)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))
)

// printer localizes counts with thousands separators.
var printer = message.NewPrinter(language.English)

// Advisory renders an advisory message in place of results.
func Advisory(msg string) string {
	return advisoryStyle.Render(msg) + "\n"
}

// SearchResults renders one page of CQL search hits.
func SearchResults(page *client.SearchPage, info pagination.Info, cqlStmt string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Search results") + "\n")
	if cqlStmt != "" {
		b.WriteString(metaStyle.Render("cql: "+cqlStmt) + "\n")
	}
	if len(page.Results) == 0 {
		b.WriteString(advisoryStyle.Render("no results") + "\n")
		return b.String()
	}
	for i, r := range page.Results {
		b.WriteString(searchHit(page.Start+i+1, r))
	}
	b.WriteString(offsetFooter(info, page.Start))
	return b.String()
}

// Federated renders the merged outcome of a federated search, categories in
// their fixed order, including the empty ones.
func Federated(res *search.CategoryResults) string {
	if res.Advisory != "" {
		return Advisory(res.Advisory)
	}
	var b strings.Builder
	total := 0
	for _, cat := range search.Categories {
		hits, ok := res.Results[cat]
		if !ok {
			continue
		}
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%d)", cat, len(hits))) + "\n")
		if len(hits) == 0 {
			b.WriteString(advisoryStyle.Render("no results") + "\n")
			continue
		}
		for i, r := range hits {
			b.WriteString(searchHit(i+1, r))
		}
		total += len(hits)
	}
	b.WriteString(metaStyle.Render(printer.Sprintf("%d results across categories", total)) + "\n")
	return b.String()
}

// Pages renders a cursor-paged page listing.
func Pages(list *client.PageList, info pagination.Info) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pages") + "\n")
	if len(list.Results) == 0 {
		b.WriteString(advisoryStyle.Render("no pages") + "\n")
		return b.String()
	}
	for _, p := range list.Results {
		b.WriteString(fmt.Sprintf("  %s  %s\n", p.ID, p.Title))
		meta := p.Status
		if p.SpaceID != "" {
			meta += ", space " + p.SpaceID
		}
		if p.Version != nil {
			meta += fmt.Sprintf(", v%d", p.Version.Number)
		}
		b.WriteString("    " + metaStyle.Render(meta) + "\n")
	}
	b.WriteString(cursorFooter(info))
	return b.String()
}

// PageDetail renders a single page with its optional body.
func PageDetail(p *client.Page) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title) + "\n")
	meta := fmt.Sprintf("id %s, %s", p.ID, p.Status)
	if p.Version != nil {
		meta += fmt.Sprintf(", v%d", p.Version.Number)
	}
	if p.AuthorID != "" {
		meta += ", author " + p.AuthorID
	}
	b.WriteString(metaStyle.Render(meta) + "\n")
	if p.Body != nil && p.Body.Storage != nil && p.Body.Storage.Value != "" {
		b.WriteString("\n" + p.Body.Storage.Value + "\n")
	}
	return b.String()
}

// Spaces renders a cursor-paged space listing.
func Spaces(list *client.SpaceList, info pagination.Info) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Spaces") + "\n")
	if len(list.Results) == 0 {
		b.WriteString(advisoryStyle.Render("no spaces") + "\n")
		return b.String()
	}
	for _, s := range list.Results {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", s.Key, s.Name))
		b.WriteString("    " + metaStyle.Render(fmt.Sprintf("id %s, %s, %s", s.ID, s.Type, s.Status)) + "\n")
	}
	b.WriteString(cursorFooter(info))
	return b.String()
}

// SpaceDetail renders a single space.
func SpaceDetail(s *client.Space) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %s", s.Key, s.Name)) + "\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("id %s, %s, %s", s.ID, s.Type, s.Status)) + "\n")
	return b.String()
}

// Comments renders a cursor-paged footer comment listing.
func Comments(list *client.CommentList, info pagination.Info) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Comments") + "\n")
	if len(list.Results) == 0 {
		b.WriteString(advisoryStyle.Render("no comments") + "\n")
		return b.String()
	}
	for _, c := range list.Results {
		b.WriteString(fmt.Sprintf("  %s  %s\n", c.ID, c.Title))
		if c.Body != nil && c.Body.Storage != nil && c.Body.Storage.Value != "" {
			b.WriteString(excerptStyle.Render(c.Body.Storage.Value) + "\n")
		}
	}
	b.WriteString(cursorFooter(info))
	return b.String()
}

func searchHit(n int, r client.SearchResult) string {
	var b strings.Builder
	title := r.Title
	if title == "" && r.Content != nil {
		title = r.Content.Title
	}
	b.WriteString(fmt.Sprintf("  %d. %s\n", n, title))

	var meta []string
	if r.Content != nil {
		meta = append(meta, r.Content.Type, "id "+r.Content.ID)
	} else if r.Space != nil {
		meta = append(meta, "space", "key "+r.Space.Key)
	}
	if r.ResultGlobalContainer != nil && r.ResultGlobalContainer.Title != "" {
		meta = append(meta, "in "+r.ResultGlobalContainer.Title)
	}
	if r.LastModified != "" {
		meta = append(meta, formatTime(r.LastModified))
	}
	if len(meta) > 0 {
		b.WriteString("    " + metaStyle.Render(strings.Join(meta, ", ")) + "\n")
	}
	if r.Excerpt != "" {
		b.WriteString(excerptStyle.Render(r.Excerpt) + "\n")
	}
	if r.URL != "" {
		b.WriteString("    " + urlStyle.Render(r.URL) + "\n")
	}
	return b.String()
}

// formatTime renders an API timestamp relative to now when recent, as an
// absolute date otherwise. Unparseable values pass through untouched.
func formatTime(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}

	now := time.Now()
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(diff.Hours()/24))
	}
	if t.Year() == now.Year() {
		return t.Format("Jan 2, 15:04")
	}
	return t.Format("Jan 2, 2006")
}

func offsetFooter(info pagination.Info, start int) string {
	line := printer.Sprintf("%d results", info.Count)
	if info.HasMore {
		line += fmt.Sprintf("; more available, next start %d", start+info.Count)
	}
	return metaStyle.Render(line) + "\n"
}

func cursorFooter(info pagination.Info) string {
	line := printer.Sprintf("%d results", info.Count)
	if info.HasMore {
		line += "; more available, next cursor " + info.NextCursor
	}
	return metaStyle.Render(line) + "\n"
}
