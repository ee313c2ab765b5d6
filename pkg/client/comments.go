package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"
)

// ListCommentsOptions are paging parameters for comment listings.
type ListCommentsOptions struct {
	// Limit is the page size. Zero falls back to the server default.
	Limit int
	// Cursor is the opaque continuation token from a previous page.
	Cursor string
	// IncludeBody includes the storage representation of each comment body.
	IncludeBody bool
}

// ListFooterComments lists the footer comments of a page, cursor-paged.
func (c *Client) ListFooterComments(ctx context.Context, pageID string, opts ListCommentsOptions) (*CommentList, error) {
	query := make(url.Values)
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}
	if opts.IncludeBody {
		query.Set("body-format", "storage")
	}

	var list CommentList
	path := "/api/v2/pages/" + url.PathEscape(pageID) + "/footer-comments"
	if err := c.get(ctx, path, query, &list); err != nil {
		return nil, errors.Wrapf(err, "listing comments for page %q", pageID)
	}
	if list.Results == nil {
		list.Results = []Comment{}
	}
	return &list, nil
}
