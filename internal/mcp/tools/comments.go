package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/comments"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
)

// ListCommentsInput is the input for conf_ls_page_comments.
type ListCommentsInput struct {
	PageID      string `json:"page_id" jsonschema:"required,Page whose comments to list"`
	Limit       int    `json:"limit,omitempty" jsonschema:"Page size (default 25)"`
	Cursor      string `json:"cursor,omitempty" jsonschema:"Continuation token from a previous page"`
	IncludeBody bool   `json:"include_body,omitempty" jsonschema:"Include storage-format comment bodies"`
}

// CommentSummary is one comment in wire form.
type CommentSummary struct {
	ID       string `json:"id"`
	Status   string `json:"status,omitempty"`
	Title    string `json:"title,omitempty"`
	AuthorID string `json:"author_id,omitempty"`
	Body     string `json:"body,omitempty"`
}

// ListCommentsOutput is the output for conf_ls_page_comments.
type ListCommentsOutput struct {
	Results    []CommentSummary `json:"results"`
	Pagination Pagination       `json:"pagination"`
}

// ToolListComments lists the footer comments of a page.
func ToolListComments(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListCommentsInput) (*sdkmcp.CallToolResult, ListCommentsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListCommentsInput) (*sdkmcp.CallToolResult, ListCommentsOutput, error) {
		if input.PageID == "" {
			return nil, ListCommentsOutput{}, ErrInvalidInput("page_id is required")
		}

		list, err := d.Comments.List(ctx, input.PageID, comments.ListOptions{
			Limit:       input.Limit,
			Cursor:      input.Cursor,
			IncludeBody: input.IncludeBody,
		})
		if err != nil {
			return nil, ListCommentsOutput{}, WrapConfluenceError(err)
		}

		return nil, ListCommentsOutput{
			Results:    commentSummaries(list.Results),
			Pagination: cursorPagination(len(list.Results), list.Links.Next),
		}, nil
	}
}

func commentSummaries(list []client.Comment) []CommentSummary {
	out := make([]CommentSummary, 0, len(list))
	for _, c := range list {
		s := CommentSummary{
			ID:     c.ID,
			Status: c.Status,
			Title:  c.Title,
		}
		if c.Version != nil {
			s.AuthorID = c.Version.AuthorID
		}
		if c.Body != nil && c.Body.Storage != nil {
			s.Body = c.Body.Storage.Value
		}
		out = append(out, s)
	}
	return out
}
