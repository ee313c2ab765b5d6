// Package pages lists Confluence pages, resolving exact-title lookups that
// come back empty through a wildcard search fallback.
package pages

import (
	"context"
	"log/slog"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/cql"
)

// DefaultLimit is the page size used when the caller supplies none.
const DefaultLimit = 25

// MaxLimit caps the page size of a listing.
const MaxLimit = 250

// Lister issues the primary v2 page listing.
type Lister interface {
	ListPages(ctx context.Context, opts client.ListPagesOptions) (*client.PageList, error)
}

// Searcher executes the CQL fallback query.
type Searcher interface {
	Search(ctx context.Context, cql string, opts client.SearchOptions) (*client.SearchPage, error)
}

// SpaceResolver maps space ids to keys, best effort.
type SpaceResolver interface {
	ResolveKeys(ctx context.Context, ids []string) (map[string]string, error)
}

// Service lists pages with an exact-match-first, wildcard-fallback strategy.
type Service struct {
	lister   Lister
	searcher Searcher
	spaces   SpaceResolver
}

// NewService creates a page listing service.
func NewService(lister Lister, searcher Searcher, spaces SpaceResolver) *Service {
	return &Service{lister: lister, searcher: searcher, spaces: spaces}
}

// ListOptions are the caller's listing parameters.
type ListOptions struct {
	// Title filters by exact title; it is also the seed of the wildcard
	// fallback.
	Title string
	// SpaceIDs restricts results to these spaces (numeric v2 ids).
	SpaceIDs []string
	// Status filters by page status.
	Status string
	// Sort is a v2 sort key.
	Sort string
	// Limit is the page size, clamped to [1, MaxLimit].
	Limit int
	// Cursor continues a previous listing. A non-empty cursor disables the
	// fallback: past page one the result set must stay consistent.
	Cursor string
}

func (o ListOptions) normalized() ListOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	return o
}

func (o ListOptions) clientOptions() client.ListPagesOptions {
	return client.ListPagesOptions{
		Title:    o.Title,
		SpaceIDs: o.SpaceIDs,
		Status:   o.Status,
		Sort:     o.Sort,
		Limit:    o.Limit,
		Cursor:   o.Cursor,
	}
}

// List lists pages without any fallback behavior.
func (s *Service) List(ctx context.Context, opts ListOptions) (*client.PageList, error) {
	return s.lister.ListPages(ctx, opts.normalized().clientOptions())
}

// ListWithFallback lists pages by exact title. When the first page comes
// back empty it retries with a wildcard title search and maps the hits into
// the canonical page shape.
//
// The fallback is strictly best-effort: it runs only on page one (no cursor
// supplied), its failures are swallowed, and when it too finds nothing the
// original empty primary page is returned so pagination metadata keeps the
// primary endpoint's semantics.
func (s *Service) ListWithFallback(ctx context.Context, opts ListOptions) (*client.PageList, error) {
	opts = opts.normalized()

	primary, err := s.lister.ListPages(ctx, opts.clientOptions())
	if err != nil {
		return nil, err
	}
	if len(primary.Results) > 0 || opts.Cursor != "" || opts.Title == "" {
		return primary, nil
	}

	fallback, err := s.searchByTitlePrefix(ctx, opts)
	if err != nil {
		slog.Warn("wildcard title fallback failed, returning primary result",
			slog.String("title", opts.Title),
			slog.String("error", err.Error()),
		)
		return primary, nil
	}
	if len(fallback) == 0 {
		return primary, nil
	}

	slog.Debug("exact title lookup empty, wildcard fallback matched",
		slog.String("title", opts.Title),
		slog.Int("matches", len(fallback)),
	)
	return &client.PageList{Results: fallback, Links: primary.Links}, nil
}

// searchByTitlePrefix runs the fallback CQL query and keeps only page hits.
func (s *Service) searchByTitlePrefix(ctx context.Context, opts ListOptions) ([]client.Page, error) {
	clauses := []string{cql.FuzzyPrefix("title", opts.Title)}

	if len(opts.SpaceIDs) > 0 {
		if keys := s.resolveSpaceKeys(ctx, opts.SpaceIDs); len(keys) > 0 {
			spaceClauses := make([]string, len(keys))
			for i, key := range keys {
				spaceClauses[i] = cql.Exact("space", key)
			}
			clauses = append(clauses, cql.Group(cql.Or(spaceClauses...)))
		}
	}
	clauses = append(clauses, cql.Exact("type", string(cql.TypePage)))

	page, err := s.searcher.Search(ctx, cql.And(clauses...), client.SearchOptions{Limit: opts.Limit})
	if err != nil {
		return nil, err
	}

	results := make([]client.Page, 0, len(page.Results))
	for _, hit := range page.Results {
		if hit.Content == nil || hit.Content.Type != string(cql.TypePage) {
			continue
		}
		results = append(results, pageFromHit(hit))
	}
	return results, nil
}

// resolveSpaceKeys maps space ids to keys so the fallback can be constrained
// to the same spaces the primary request targeted. Resolution failures drop
// the constraint rather than failing the request.
func (s *Service) resolveSpaceKeys(ctx context.Context, ids []string) []string {
	resolved, err := s.spaces.ResolveKeys(ctx, ids)
	if err != nil {
		slog.Warn("space key resolution failed, fallback proceeds without space filter",
			slog.Int("ids", len(ids)),
			slog.String("error", err.Error()),
		)
		return nil
	}

	keys := make([]string, 0, len(resolved))
	for _, id := range ids {
		if key, ok := resolved[id]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// pageFromHit maps a thin search hit into the canonical page shape. Fields
// the search payload does not carry get defined placeholders so renderers
// can assume the canonical shape unconditionally.
func pageFromHit(hit client.SearchResult) client.Page {
	page := client.Page{
		ID:       hit.Content.ID,
		Status:   hit.Content.Status,
		Title:    hit.Content.Title,
		AuthorID: "",
		Version:  &client.Version{Number: 1},
	}
	if page.Status == "" {
		page.Status = "current"
	}
	if page.Title == "" {
		page.Title = hit.Title
	}
	return page
}
