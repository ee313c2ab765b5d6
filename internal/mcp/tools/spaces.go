package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/spaces"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
)

// ListSpacesInput is the input for conf_ls_spaces.
type ListSpacesInput struct {
	Type   string `json:"type,omitempty" jsonschema:"Space type: global or personal"`
	Status string `json:"status,omitempty" jsonschema:"Space status: current or archived"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Page size (default 25)"`
	Cursor string `json:"cursor,omitempty" jsonschema:"Continuation token from a previous page"`
}

// SpaceSummary is one space in wire form.
type SpaceSummary struct {
	ID     string `json:"id"`
	Key    string `json:"key"`
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"`
	Status string `json:"status,omitempty"`
}

// ListSpacesOutput is the output for conf_ls_spaces.
type ListSpacesOutput struct {
	Results    []SpaceSummary `json:"results"`
	Pagination Pagination     `json:"pagination"`
}

// ToolListSpaces lists spaces, cursor-paged.
func ToolListSpaces(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListSpacesInput) (*sdkmcp.CallToolResult, ListSpacesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListSpacesInput) (*sdkmcp.CallToolResult, ListSpacesOutput, error) {
		if input.Type != "" && input.Type != "global" && input.Type != "personal" {
			return nil, ListSpacesOutput{}, ErrInvalidInput("type must be 'global' or 'personal'")
		}
		if input.Status != "" && input.Status != "current" && input.Status != "archived" {
			return nil, ListSpacesOutput{}, ErrInvalidInput("status must be 'current' or 'archived'")
		}

		list, err := d.Spaces.List(ctx, spaces.ListOptions{
			Type:   input.Type,
			Status: input.Status,
			Limit:  input.Limit,
			Cursor: input.Cursor,
		})
		if err != nil {
			return nil, ListSpacesOutput{}, WrapConfluenceError(err)
		}

		return nil, ListSpacesOutput{
			Results:    spaceSummaries(list.Results),
			Pagination: cursorPagination(len(list.Results), list.Links.Next),
		}, nil
	}
}

// GetSpaceInput is the input for conf_get_space.
type GetSpaceInput struct {
	Key string `json:"key" jsonschema:"required,Space key, e.g. DEV"`
}

// GetSpaceOutput is the output for conf_get_space.
type GetSpaceOutput struct {
	Space SpaceSummary `json:"space"`
}

// ToolGetSpace retrieves a single space by key.
func ToolGetSpace(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetSpaceInput) (*sdkmcp.CallToolResult, GetSpaceOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetSpaceInput) (*sdkmcp.CallToolResult, GetSpaceOutput, error) {
		if input.Key == "" {
			return nil, GetSpaceOutput{}, ErrInvalidInput("key is required")
		}

		space, err := d.Client.GetSpaceByKey(ctx, input.Key)
		if err != nil {
			return nil, GetSpaceOutput{}, WrapConfluenceError(err)
		}
		return nil, GetSpaceOutput{Space: spaceSummary(*space)}, nil
	}
}

func spaceSummary(s client.Space) SpaceSummary {
	return SpaceSummary{
		ID:     s.ID,
		Key:    s.Key,
		Name:   s.Name,
		Type:   s.Type,
		Status: s.Status,
	}
}

func spaceSummaries(list []client.Space) []SpaceSummary {
	out := make([]SpaceSummary, 0, len(list))
	for _, s := range list {
		out = append(out, spaceSummary(s))
	}
	return out
}
