// Package comments lists the comments attached to a Confluence page.
package comments

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
)

// DefaultLimit is the page size used when the caller supplies none.
const DefaultLimit = 25

// Lister issues v2 footer comment listings.
type Lister interface {
	ListFooterComments(ctx context.Context, pageID string, opts client.ListCommentsOptions) (*client.CommentList, error)
}

// Service lists page comments.
type Service struct {
	lister Lister
}

// NewService creates a comment listing service.
func NewService(lister Lister) *Service {
	return &Service{lister: lister}
}

// ListOptions are the caller's listing parameters.
type ListOptions struct {
	Limit       int
	Cursor      string
	IncludeBody bool
}

// List lists the footer comments of a page, cursor-paged.
func (s *Service) List(ctx context.Context, pageID string, opts ListOptions) (*client.CommentList, error) {
	if pageID == "" {
		return nil, errors.New("page id is required")
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	return s.lister.ListFooterComments(ctx, pageID, client.ListCommentsOptions{
		Limit:       opts.Limit,
		Cursor:      opts.Cursor,
		IncludeBody: opts.IncludeBody,
	})
}
