// Package spaces lists Confluence spaces and resolves space ids to keys.
package spaces

import (
	"context"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
)

// DefaultLimit is the page size used when the caller supplies none.
const DefaultLimit = 25

// Lister issues v2 space listings.
type Lister interface {
	ListSpaces(ctx context.Context, opts client.ListSpacesOptions) (*client.SpaceList, error)
}

// Service lists spaces.
type Service struct {
	lister Lister
}

// NewService creates a space listing service.
func NewService(lister Lister) *Service {
	return &Service{lister: lister}
}

// ListOptions are the caller's listing parameters.
type ListOptions struct {
	// Type filters by space type, "global" or "personal".
	Type string
	// Status filters by space status, "current" or "archived".
	Status string
	// Limit is the page size.
	Limit int
	// Cursor continues a previous listing.
	Cursor string
}

// List lists spaces, cursor-paged.
func (s *Service) List(ctx context.Context, opts ListOptions) (*client.SpaceList, error) {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	return s.lister.ListSpaces(ctx, client.ListSpacesOptions{
		Type:   opts.Type,
		Status: opts.Status,
		Limit:  opts.Limit,
		Cursor: opts.Cursor,
	})
}

// ResolveKeys maps space ids to their keys, batching lookups at the API's
// per-request id cap. Ids the API does not know are simply absent from the
// result; the caller decides whether that matters.
func (s *Service) ResolveKeys(ctx context.Context, ids []string) (map[string]string, error) {
	keys := make(map[string]string, len(ids))
	for start := 0; start < len(ids); start += client.MaxSpaceIDsPerRequest {
		end := min(start+client.MaxSpaceIDsPerRequest, len(ids))
		batch := ids[start:end]

		list, err := s.lister.ListSpaces(ctx, client.ListSpacesOptions{
			IDs:   batch,
			Limit: len(batch),
		})
		if err != nil {
			return nil, err
		}
		for _, space := range list.Results {
			keys[space.ID] = space.Key
		}
	}
	return keys, nil
}
