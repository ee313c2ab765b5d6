package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ListPagesOptions are filters and paging parameters for ListPages.
type ListPagesOptions struct {
	// Title filters to pages with this exact title.
	Title string
	// SpaceIDs restricts results to these spaces (numeric v2 ids).
	SpaceIDs []string
	// Status filters by page status, e.g. "current" or "archived".
	Status string
	// Sort is a v2 sort key, e.g. "-modified-date".
	Sort string
	// Limit is the page size. Zero falls back to the server default.
	Limit int
	// Cursor is the opaque continuation token from a previous page.
	Cursor string
}

// ListPages lists pages via the v2 endpoint. The response pages with an
// opaque cursor carried in _links.next.
func (c *Client) ListPages(ctx context.Context, opts ListPagesOptions) (*PageList, error) {
	query := make(url.Values)
	if opts.Title != "" {
		query.Set("title", opts.Title)
	}
	if len(opts.SpaceIDs) > 0 {
		query.Set("space-id", strings.Join(opts.SpaceIDs, ","))
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.Sort != "" {
		query.Set("sort", opts.Sort)
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}

	var list PageList
	if err := c.get(ctx, "/api/v2/pages", query, &list); err != nil {
		return nil, errors.Wrap(err, "listing pages")
	}
	if list.Results == nil {
		list.Results = []Page{}
	}
	return &list, nil
}

// GetPage retrieves a page by id. When includeBody is set the storage
// representation of the body is included.
func (c *Client) GetPage(ctx context.Context, pageID string, includeBody bool) (*Page, error) {
	query := make(url.Values)
	if includeBody {
		query.Set("body-format", "storage")
	}

	var page Page
	path := "/api/v2/pages/" + url.PathEscape(pageID)
	if err := c.get(ctx, path, query, &page); err != nil {
		return nil, errors.Wrapf(err, "getting page %q", pageID)
	}
	return &page, nil
}
