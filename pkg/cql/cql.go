// Package cql builds Confluence Query Language statements from structured
// filter options.
//
// CQL is a boolean language of field/operator/value clauses
// (`title ~ "Roadmap"`, `space = "DEV"`) joined by AND/OR. This package owns
// the escaping rules for quoted literals and the clause ordering used across
// the server, so callers never assemble query strings by hand.
package cql

import "strings"

// ContentType enumerates the content types CQL can restrict to.
type ContentType string

const (
	TypePage       ContentType = "page"
	TypeBlogpost   ContentType = "blogpost"
	TypeAttachment ContentType = "attachment"
	TypeComment    ContentType = "comment"
	TypeSpace      ContentType = "space"
)

// Valid reports whether t is one of the known content types.
func (t ContentType) Valid() bool {
	switch t {
	case TypePage, TypeBlogpost, TypeAttachment, TypeComment, TypeSpace:
		return true
	}
	return false
}

// Escape returns text safe to embed inside a double-quoted CQL literal.
// Backslashes and double quotes are escaped; nothing else is touched.
// Escape raw user text exactly once per literal it is inserted into.
func Escape(text string) string {
	if !strings.ContainsAny(text, `\"`) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + 2)
	for _, r := range text {
		if r == '\\' || r == '"' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Fuzzy builds a fuzzy-match clause: field ~ "value".
func Fuzzy(field, value string) string {
	return field + ` ~ "` + Escape(value) + `"`
}

// FuzzyPrefix builds a wildcard prefix-match clause: field ~ "value*".
// The wildcard is appended after escaping so it stays a wildcard.
func FuzzyPrefix(field, value string) string {
	return field + ` ~ "` + Escape(value) + `*"`
}

// Exact builds an exact-match clause: field = "value".
func Exact(field, value string) string {
	return field + ` = "` + Escape(value) + `"`
}

// And joins clauses with AND, skipping empty ones.
func And(clauses ...string) string {
	return join(clauses, " AND ")
}

// Or joins clauses with OR, skipping empty ones.
func Or(clauses ...string) string {
	return join(clauses, " OR ")
}

// Group parenthesizes a clause so it can be combined with a different
// operator without changing precedence.
func Group(clause string) string {
	if clause == "" {
		return ""
	}
	return "(" + clause + ")"
}

func join(clauses []string, sep string) string {
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, sep)
}

// Filters is a caller's structured query intent. Zero-valued fields emit no
// clause; a fully zero Filters builds the empty string, which callers must
// treat as "no criteria provided", never as "match everything".
type Filters struct {
	// Title matches the content title (fuzzy).
	Title string
	// SpaceKey restricts results to one space (exact).
	SpaceKey string
	// Labels must all be present on a result (one clause per label, ANDed).
	Labels []string
	// ContentType restricts the content type (exact).
	ContentType ContentType
	// Text is a free-text term matched against content bodies (fuzzy).
	Text string
	// RawCQL is a literal fragment ANDed with the synthesized clauses. When
	// no other field is set it becomes the whole statement.
	RawCQL string
}

// Empty reports whether no field is set.
func (f Filters) Empty() bool {
	return f.Title == "" && f.SpaceKey == "" && len(f.Labels) == 0 &&
		f.ContentType == "" && f.Text == "" && f.RawCQL == ""
}

// Build synthesizes a CQL statement from the filters. Clause order is fixed:
// title, space, labels, type, text. A raw fragment is ANDed last, with the
// synthesized portion parenthesized so the fragment's own operators cannot
// rebind it.
func Build(f Filters) string {
	clauses := make([]string, 0, 4+len(f.Labels))
	if f.Title != "" {
		clauses = append(clauses, Fuzzy("title", f.Title))
	}
	if f.SpaceKey != "" {
		clauses = append(clauses, Exact("space", f.SpaceKey))
	}
	for _, label := range f.Labels {
		clauses = append(clauses, Exact("label", label))
	}
	if f.ContentType != "" {
		clauses = append(clauses, Exact("type", string(f.ContentType)))
	}
	if f.Text != "" {
		clauses = append(clauses, Fuzzy("text", f.Text))
	}

	synthesized := And(clauses...)
	if f.RawCQL == "" {
		return synthesized
	}
	if synthesized == "" {
		return f.RawCQL
	}
	return Group(synthesized) + " AND " + f.RawCQL
}
