// Package pagination normalizes the two paging envelopes the Confluence API
// uses into one shape the tools and renderers can consume.
//
// The v2 endpoints page with an opaque cursor carried in a `_links.next`
// URL; the v1 search endpoint pages with a numeric start offset and
// count fields. Call sites declare which model applies; the envelope alone
// does not always disambiguate, since v1 responses carry both counts and
// links.
package pagination

import "strings"

// Mode selects which paging model governs a raw page.
type Mode int

const (
	// ModeCursor pages via an opaque continuation token (v2 endpoints).
	ModeCursor Mode = iota
	// ModeOffset pages via a numeric start index and limit (v1 search, and
	// client-side-paginated local slices).
	ModeOffset
)

// Info is the normalized pagination descriptor. Exactly one of NextCursor
// and NextOffset is meaningful, selected by the mode the call site declared.
type Info struct {
	// Count is the number of records in the current page.
	Count int
	// HasMore reports whether another page follows. In offset mode this is
	// a heuristic (returned count == requested limit) unless the page
	// carried an explicit flag; an exactly-full final page therefore reads
	// as HasMore even when nothing follows.
	HasMore bool
	// NextCursor is the opaque continuation token, preserved verbatim from
	// the next link (cursor mode only).
	NextCursor string
	// NextOffset is the start index of the following page (offset mode
	// only). Extract leaves it zero: callers add start + Count themselves,
	// since the same mode also serves locally sliced lists where the offset
	// is not the remote one.
	NextOffset int
}

// Page is the slice of a raw response the normalizer reads. It is never
// mutated.
type Page struct {
	// Count is the number of records returned.
	Count int
	// NextLink is the `_links.next` URL, empty on the terminal page
	// (cursor mode).
	NextLink string
	// Limit is the requested page size (offset mode).
	Limit int
	// MoreFlag is the explicit more-results signal, when the endpoint
	// reported one (offset mode).
	MoreFlag *bool
}

// Extract derives the normalized pagination descriptor for a raw page under
// the declared mode.
func Extract(p Page, mode Mode) Info {
	info := Info{Count: p.Count}
	switch mode {
	case ModeCursor:
		if p.NextLink != "" {
			info.HasMore = true
			info.NextCursor = cursorToken(p.NextLink)
		}
	case ModeOffset:
		info.HasMore = p.Limit > 0 && p.Count == p.Limit
		if p.MoreFlag != nil && *p.MoreFlag {
			info.HasMore = true
		}
	}
	return info
}

// cursorToken pulls the cursor parameter out of a next-page link. The value
// is taken as the raw substring, without percent-decoding, so it round-trips
// to the API byte-identical.
func cursorToken(link string) string {
	i := strings.IndexByte(link, '?')
	if i < 0 {
		return ""
	}
	for _, param := range strings.Split(link[i+1:], "&") {
		if v, ok := strings.CutPrefix(param, "cursor="); ok {
			return v
		}
	}
	return ""
}
