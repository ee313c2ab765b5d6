// Package tools contains the MCP tool implementations.
package tools

import (
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/pagination"
)

// Pagination is the wire form of the normalized pagination descriptor. At
// most one of NextCursor and NextOffset is set.
type Pagination struct {
	Count      int    `json:"count"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor,omitempty"`
	NextOffset int    `json:"next_offset,omitempty"`
}

// cursorPagination normalizes a v2 cursor envelope for a tool response.
func cursorPagination(count int, nextLink string) Pagination {
	info := pagination.Extract(pagination.Page{Count: count, NextLink: nextLink}, pagination.ModeCursor)
	return Pagination{
		Count:      info.Count,
		HasMore:    info.HasMore,
		NextCursor: info.NextCursor,
	}
}

// offsetPagination normalizes a v1 offset envelope for a tool response. The
// next offset is the caller-side start + count; it is only reported when
// more results may follow.
func offsetPagination(count, limit, start int) Pagination {
	info := pagination.Extract(pagination.Page{Count: count, Limit: limit}, pagination.ModeOffset)
	p := Pagination{
		Count:   info.Count,
		HasMore: info.HasMore,
	}
	if p.HasMore {
		p.NextOffset = start + info.Count
	}
	return p
}

// clampLimit bounds a caller-supplied limit to [1, max], substituting def
// for zero.
func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	return limit
}
