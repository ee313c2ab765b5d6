package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"
)

// SearchOptions are execution parameters for a CQL search.
type SearchOptions struct {
	// Limit is the page size. Zero falls back to the server default.
	Limit int
	// Start is the zero-based offset of the first result.
	Start int
	// Excerpt requests highlighted excerpts with each hit.
	Excerpt bool
	// IncludeArchived includes content from archived spaces.
	IncludeArchived bool
}

// Search executes a CQL statement against the v1 search endpoint and
// returns the raw offset-paged response. The statement must be non-empty;
// refusing empty statements here keeps an accidental match-everything query
// from ever reaching the API.
func (c *Client) Search(ctx context.Context, cql string, opts SearchOptions) (*SearchPage, error) {
	if cql == "" {
		return nil, errors.New("empty CQL statement")
	}

	query := make(url.Values)
	query.Set("cql", cql)
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Start > 0 {
		query.Set("start", strconv.Itoa(opts.Start))
	}
	if opts.Excerpt {
		query.Set("excerpt", "highlight")
	} else {
		query.Set("excerpt", "none")
	}
	query.Set("includeArchivedSpaces", strconv.FormatBool(opts.IncludeArchived))

	var page SearchPage
	if err := c.get(ctx, "/rest/api/search", query, &page); err != nil {
		return nil, errors.Wrap(err, "searching content")
	}
	if page.Results == nil {
		page.Results = []SearchResult{}
	}
	return &page, nil
}
