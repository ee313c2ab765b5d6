package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/pages"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
)

// ListPagesInput is the input for conf_ls_pages.
type ListPagesInput struct {
	Title    string   `json:"title,omitempty" jsonschema:"Exact title filter; an empty exact match falls back to a wildcard title search"`
	SpaceIDs []string `json:"space_ids,omitempty" jsonschema:"Restrict results to these space ids"`
	Status   string   `json:"status,omitempty" jsonschema:"Page status: current or archived"`
	Sort     string   `json:"sort,omitempty" jsonschema:"Sort key, e.g. -modified-date"`
	Limit    int      `json:"limit,omitempty" jsonschema:"Page size (default 25)"`
	Cursor   string   `json:"cursor,omitempty" jsonschema:"Continuation token from a previous page"`
}

// PageSummary is one page in wire form. Version and author are always set;
// entries recovered through the wildcard fallback carry placeholder values.
type PageSummary struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Title     string `json:"title"`
	SpaceID   string `json:"space_id,omitempty"`
	AuthorID  string `json:"author_id"`
	CreatedAt string `json:"created_at,omitempty"`
	Version   int    `json:"version"`
}

// ListPagesOutput is the output for conf_ls_pages.
type ListPagesOutput struct {
	Results    []PageSummary `json:"results"`
	Pagination Pagination    `json:"pagination"`
}

// ToolListPages lists pages, with the wildcard-title fallback engaged when
// an exact title lookup matches nothing on page one.
func ToolListPages(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListPagesInput) (*sdkmcp.CallToolResult, ListPagesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListPagesInput) (*sdkmcp.CallToolResult, ListPagesOutput, error) {
		opts := pages.ListOptions{
			Title:    input.Title,
			SpaceIDs: input.SpaceIDs,
			Status:   input.Status,
			Sort:     input.Sort,
			Limit:    input.Limit,
			Cursor:   input.Cursor,
		}

		list, err := d.Pages.ListWithFallback(ctx, opts)
		if err != nil {
			return nil, ListPagesOutput{}, WrapConfluenceError(err)
		}

		return nil, ListPagesOutput{
			Results:    pageSummaries(list.Results),
			Pagination: cursorPagination(len(list.Results), list.Links.Next),
		}, nil
	}
}

// GetPageInput is the input for conf_get_page.
type GetPageInput struct {
	PageID      string `json:"page_id" jsonschema:"required,Page ID to retrieve"`
	IncludeBody bool   `json:"include_body,omitempty" jsonschema:"Include the storage-format body"`
}

// GetPageOutput is the output for conf_get_page.
type GetPageOutput struct {
	Page PageSummary `json:"page"`
	Body string      `json:"body,omitempty"`
}

// ToolGetPage retrieves a single page by id.
func ToolGetPage(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetPageInput) (*sdkmcp.CallToolResult, GetPageOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetPageInput) (*sdkmcp.CallToolResult, GetPageOutput, error) {
		if input.PageID == "" {
			return nil, GetPageOutput{}, ErrInvalidInput("page_id is required")
		}

		page, err := d.Client.GetPage(ctx, input.PageID, input.IncludeBody)
		if err != nil {
			return nil, GetPageOutput{}, WrapConfluenceError(err)
		}

		out := GetPageOutput{Page: pageSummary(*page)}
		if page.Body != nil && page.Body.Storage != nil {
			out.Body = page.Body.Storage.Value
		}
		return nil, out, nil
	}
}

func pageSummary(p client.Page) PageSummary {
	s := PageSummary{
		ID:        p.ID,
		Status:    p.Status,
		Title:     p.Title,
		SpaceID:   p.SpaceID,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		Version:   1,
	}
	if p.Version != nil {
		s.Version = p.Version.Number
	}
	return s
}

func pageSummaries(list []client.Page) []PageSummary {
	out := make([]PageSummary, 0, len(list))
	for _, p := range list {
		out = append(out, pageSummary(p))
	}
	return out
}
