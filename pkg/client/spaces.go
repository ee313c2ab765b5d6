package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// MaxSpaceIDsPerRequest is the largest ids batch the v2 spaces endpoint
// accepts in one call.
const MaxSpaceIDsPerRequest = 100

// ListSpacesOptions are filters and paging parameters for ListSpaces.
type ListSpacesOptions struct {
	// IDs restricts results to these space ids (at most
	// MaxSpaceIDsPerRequest per call).
	IDs []string
	// Keys restricts results to these space keys.
	Keys []string
	// Type filters by space type, "global" or "personal".
	Type string
	// Status filters by space status, "current" or "archived".
	Status string
	// Limit is the page size. Zero falls back to the server default.
	Limit int
	// Cursor is the opaque continuation token from a previous page.
	Cursor string
}

// ListSpaces lists spaces via the v2 endpoint, cursor-paged.
func (c *Client) ListSpaces(ctx context.Context, opts ListSpacesOptions) (*SpaceList, error) {
	if len(opts.IDs) > MaxSpaceIDsPerRequest {
		return nil, errors.Newf("at most %d space ids per request, got %d", MaxSpaceIDsPerRequest, len(opts.IDs))
	}

	query := make(url.Values)
	if len(opts.IDs) > 0 {
		query.Set("ids", strings.Join(opts.IDs, ","))
	}
	if len(opts.Keys) > 0 {
		query.Set("keys", strings.Join(opts.Keys, ","))
	}
	if opts.Type != "" {
		query.Set("type", opts.Type)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}

	var list SpaceList
	if err := c.get(ctx, "/api/v2/spaces", query, &list); err != nil {
		return nil, errors.Wrap(err, "listing spaces")
	}
	if list.Results == nil {
		list.Results = []Space{}
	}
	return &list, nil
}

// GetSpaceByKey retrieves a single space by its key.
func (c *Client) GetSpaceByKey(ctx context.Context, key string) (*Space, error) {
	list, err := c.ListSpaces(ctx, ListSpacesOptions{Keys: []string{key}, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(list.Results) == 0 {
		return nil, &APIError{StatusCode: 404, Message: "space not found: " + key}
	}
	return &list.Results[0], nil
}
