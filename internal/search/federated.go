// Package search fans a single query out into per-category CQL searches and
// merges the responses under one contract.
package search

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/cql"
)

// MaxLimitPerCategory caps the per-category page size of a federated search.
const MaxLimitPerCategory = 25

// Category identifies one bucket of a federated search.
type Category string

const (
	CategorySpaces      Category = "spaces"
	CategoryPages       Category = "pages"
	CategoryBlogPosts   Category = "blogPosts"
	CategoryAttachments Category = "attachments"
	CategoryComments    Category = "comments"
)

// Categories is the fixed iteration and presentation order.
var Categories = []Category{
	CategorySpaces,
	CategoryPages,
	CategoryBlogPosts,
	CategoryAttachments,
	CategoryComments,
}

// contentType maps a category to its CQL type literal.
func (c Category) contentType() cql.ContentType {
	switch c {
	case CategorySpaces:
		return cql.TypeSpace
	case CategoryPages:
		return cql.TypePage
	case CategoryBlogPosts:
		return cql.TypeBlogpost
	case CategoryAttachments:
		return cql.TypeAttachment
	case CategoryComments:
		return cql.TypeComment
	}
	return ""
}

// Toggles selects which categories a federated search covers.
type Toggles struct {
	Spaces      bool
	Pages       bool
	BlogPosts   bool
	Attachments bool
	Comments    bool
}

// AllCategories returns toggles with every category enabled.
func AllCategories() Toggles {
	return Toggles{Spaces: true, Pages: true, BlogPosts: true, Attachments: true, Comments: true}
}

// Enabled reports whether the category is toggled on.
func (t Toggles) Enabled(c Category) bool {
	switch c {
	case CategorySpaces:
		return t.Spaces
	case CategoryPages:
		return t.Pages
	case CategoryBlogPosts:
		return t.BlogPosts
	case CategoryAttachments:
		return t.Attachments
	case CategoryComments:
		return t.Comments
	}
	return false
}

// None reports whether no category is toggled on.
func (t Toggles) None() bool {
	return !t.Spaces && !t.Pages && !t.BlogPosts && !t.Attachments && !t.Comments
}

// SharedFilters are filters applied across categories where they make sense.
type SharedFilters struct {
	// SpaceKey restricts hits to one space. Not applied to the spaces
	// category, where it would be self-referential.
	SpaceKey string
	// Labels must all be present on a hit. Only pages and blog posts carry
	// labels, so other categories ignore them.
	Labels []string
}

// CategoryResults is the merged outcome of a federated search. Every
// requested category is present in Results with a non-nil slice, so callers
// can render each requested bucket even when it matched nothing.
type CategoryResults struct {
	// Advisory is set instead of results when the request was not
	// executable (empty query, no categories enabled). No remote call has
	// happened when it is non-empty.
	Advisory string
	Results  map[Category][]client.SearchResult
}

// Executor runs CQL statements against the remote system.
type Executor interface {
	Search(ctx context.Context, cql string, opts client.SearchOptions) (*client.SearchPage, error)
}

// Engine orchestrates federated searches.
type Engine struct {
	executor Executor
}

// New creates a federated search engine on top of an executor.
func New(executor Executor) *Engine {
	return &Engine{executor: executor}
}

// SearchAll executes one type-scoped CQL search per enabled category,
// concurrently, and merges the results keyed by category.
//
// All category calls must succeed: a failure in any category aborts the
// whole operation with no partial results, and in-flight sibling calls are
// not waited into a partial answer. Bad-request failures are annotated with
// a filter-syntax hint before propagating.
func (e *Engine) SearchAll(ctx context.Context, query string, toggles Toggles, filters SharedFilters, limitPerCategory int) (*CategoryResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &CategoryResults{
			Advisory: "no search terms provided; give a non-empty query",
			Results:  emptyResults(toggles),
		}, nil
	}
	if toggles.None() {
		return &CategoryResults{
			Advisory: "no content categories enabled; enable at least one of spaces, pages, blog posts, attachments or comments",
			Results:  emptyResults(toggles),
		}, nil
	}

	if limitPerCategory < 1 {
		limitPerCategory = 1
	}
	if limitPerCategory > MaxLimitPerCategory {
		limitPerCategory = MaxLimitPerCategory
	}

	var enabled []Category
	for _, cat := range Categories {
		if toggles.Enabled(cat) {
			enabled = append(enabled, cat)
		}
	}

	// One slot per category; goroutines write disjoint indices and the map
	// is assembled only after the join.
	pages := make([]*client.SearchPage, len(enabled))
	g, gctx := errgroup.WithContext(ctx)
	for i, cat := range enabled {
		g.Go(func() error {
			stmt := categoryQuery(cat, query, filters)
			page, err := e.executor.Search(gctx, stmt, client.SearchOptions{
				Limit:           limitPerCategory,
				Excerpt:         true,
				IncludeArchived: false,
			})
			if err != nil {
				if client.IsBadRequest(err) {
					return errors.Wrapf(err, "%s search rejected, filters may contain invalid CQL syntax (check space key and labels)", cat)
				}
				return errors.Wrapf(err, "%s search", cat)
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &CategoryResults{Results: emptyResults(toggles)}
	for i, cat := range enabled {
		merged.Results[cat] = append(merged.Results[cat], pages[i].Results...)
	}
	return merged, nil
}

// categoryQuery builds the type-scoped CQL for one category. The type clause
// is unconditional and always first.
func categoryQuery(cat Category, query string, filters SharedFilters) string {
	clauses := []string{
		cql.Exact("type", string(cat.contentType())),
		cql.Fuzzy("text", query),
	}
	if filters.SpaceKey != "" && cat != CategorySpaces {
		clauses = append(clauses, cql.Exact("space", filters.SpaceKey))
	}
	if cat == CategoryPages || cat == CategoryBlogPosts {
		for _, label := range filters.Labels {
			clauses = append(clauses, cql.Exact("label", label))
		}
	}
	return cql.And(clauses...)
}

// emptyResults maps every requested category to an empty, non-nil slice.
func emptyResults(toggles Toggles) map[Category][]client.SearchResult {
	out := make(map[Category][]client.SearchResult, len(Categories))
	for _, cat := range Categories {
		if toggles.Enabled(cat) {
			out[cat] = []client.SearchResult{}
		}
	}
	return out
}
