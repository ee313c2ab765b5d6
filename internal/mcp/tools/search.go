package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/search"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/cql"
)

// SearchInput is the input for conf_search.
type SearchInput struct {
	Query           string   `json:"query,omitempty" jsonschema:"Free-text search term"`
	Title           string   `json:"title,omitempty" jsonschema:"Title filter (fuzzy match)"`
	SpaceKey        string   `json:"space_key,omitempty" jsonschema:"Restrict results to one space key"`
	Labels          []string `json:"labels,omitempty" jsonschema:"Labels that must all be present"`
	Type            string   `json:"type,omitempty" jsonschema:"Content type: page, blogpost, attachment, comment, space"`
	CQL             string   `json:"cql,omitempty" jsonschema:"Raw CQL fragment ANDed with the other filters"`
	Limit           int      `json:"limit,omitempty" jsonschema:"Page size (default 25)"`
	Start           int      `json:"start,omitempty" jsonschema:"Zero-based offset of the first result"`
	IncludeArchived bool     `json:"include_archived,omitempty" jsonschema:"Include content from archived spaces"`
}

// SearchHit is one search result in wire form.
type SearchHit struct {
	ID           string `json:"id,omitempty"`
	Type         string `json:"type,omitempty"`
	Title        string `json:"title"`
	Space        string `json:"space,omitempty"`
	Excerpt      string `json:"excerpt,omitempty"`
	URL          string `json:"url,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
}

// SearchOutput is the output for conf_search.
type SearchOutput struct {
	Results    []SearchHit `json:"results"`
	Pagination Pagination  `json:"pagination"`
	// CQL is the statement that was executed, for caller-side refinement.
	CQL string `json:"cql,omitempty"`
	// Advisory is set instead of results when no criteria were provided; no
	// remote call has happened.
	Advisory string `json:"advisory,omitempty"`
}

// ToolSearch executes a CQL search synthesized from structured filters.
func ToolSearch(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchInput) (*sdkmcp.CallToolResult, SearchOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchInput) (*sdkmcp.CallToolResult, SearchOutput, error) {
		if input.Type != "" && !cql.ContentType(input.Type).Valid() {
			return nil, SearchOutput{}, ErrInvalidInput("type must be one of page, blogpost, attachment, comment, space")
		}

		stmt := cql.Build(cql.Filters{
			Title:       input.Title,
			SpaceKey:    input.SpaceKey,
			Labels:      input.Labels,
			ContentType: cql.ContentType(input.Type),
			Text:        input.Query,
			RawCQL:      input.CQL,
		})
		if stmt == "" {
			return nil, SearchOutput{
				Results:  []SearchHit{},
				Advisory: "no search criteria provided; set a query, a filter, or a cql fragment",
			}, nil
		}

		limit := clampLimit(input.Limit, d.Config.DefaultPageLimit, d.Config.SearchMaxLimit)
		page, err := d.Client.Search(ctx, stmt, client.SearchOptions{
			Limit:           limit,
			Start:           input.Start,
			Excerpt:         true,
			IncludeArchived: input.IncludeArchived,
		})
		if err != nil {
			return nil, SearchOutput{}, WrapConfluenceError(err)
		}

		return nil, SearchOutput{
			Results:    searchHits(page.Results),
			Pagination: offsetPagination(len(page.Results), limit, input.Start),
			CQL:        stmt,
		}, nil
	}
}

// SearchAllInput is the input for conf_search_all.
type SearchAllInput struct {
	Query       string   `json:"query" jsonschema:"required,Free-text search term"`
	Spaces      bool     `json:"spaces,omitempty" jsonschema:"Search spaces"`
	Pages       bool     `json:"pages,omitempty" jsonschema:"Search pages"`
	BlogPosts   bool     `json:"blog_posts,omitempty" jsonschema:"Search blog posts"`
	Attachments bool     `json:"attachments,omitempty" jsonschema:"Search attachments"`
	Comments    bool     `json:"comments,omitempty" jsonschema:"Search comments"`
	SpaceKey    string   `json:"space_key,omitempty" jsonschema:"Restrict non-space results to one space key"`
	Labels      []string `json:"labels,omitempty" jsonschema:"Labels that must all be present (pages and blog posts only)"`
	Limit       int      `json:"limit,omitempty" jsonschema:"Max results per category (default 10, max 25)"`
}

// SearchAllOutput is the output for conf_search_all. Every requested
// category is present in Results, possibly with an empty list.
type SearchAllOutput struct {
	Results  map[string][]SearchHit `json:"results"`
	Advisory string                 `json:"advisory,omitempty"`
}

// ToolSearchAll runs a federated search across the enabled content
// categories. With no category flags set, all categories are searched.
func ToolSearchAll(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchAllInput) (*sdkmcp.CallToolResult, SearchAllOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchAllInput) (*sdkmcp.CallToolResult, SearchAllOutput, error) {
		toggles := search.Toggles{
			Spaces:      input.Spaces,
			Pages:       input.Pages,
			BlogPosts:   input.BlogPosts,
			Attachments: input.Attachments,
			Comments:    input.Comments,
		}
		if toggles.None() {
			toggles = search.AllCategories()
		}

		limit := input.Limit
		if limit <= 0 {
			limit = 10
		}

		res, err := d.Search.SearchAll(ctx, input.Query, toggles, search.SharedFilters{
			SpaceKey: input.SpaceKey,
			Labels:   input.Labels,
		}, limit)
		if err != nil {
			return nil, SearchAllOutput{}, WrapConfluenceError(err)
		}

		out := SearchAllOutput{
			Results:  make(map[string][]SearchHit, len(res.Results)),
			Advisory: res.Advisory,
		}
		for cat, hits := range res.Results {
			out.Results[string(cat)] = searchHits(hits)
		}
		return nil, out, nil
	}
}

// searchHits maps raw search results into wire form.
func searchHits(results []client.SearchResult) []SearchHit {
	hits := make([]SearchHit, 0, len(results))
	for _, r := range results {
		hit := SearchHit{
			Title:        r.Title,
			Excerpt:      r.Excerpt,
			URL:          r.URL,
			LastModified: r.LastModified,
		}
		if r.Content != nil {
			hit.ID = r.Content.ID
			hit.Type = r.Content.Type
			if hit.Title == "" {
				hit.Title = r.Content.Title
			}
		}
		if r.Space != nil {
			hit.Type = "space"
			hit.Space = r.Space.Key
		}
		if r.ResultGlobalContainer != nil {
			hit.Space = r.ResultGlobalContainer.Title
		}
		hits = append(hits, hit)
	}
	return hits
}
