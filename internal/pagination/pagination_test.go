package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestExtractCursorMode(t *testing.T) {
	tests := []struct {
		name string
		page Page
		want Info
	}{
		{
			name: "next link present",
			page: Page{Count: 25, NextLink: "/wiki/api/v2/pages?cursor=eyJpZCI6IjQyIn0&limit=25"},
			want: Info{Count: 25, HasMore: true, NextCursor: "eyJpZCI6IjQyIn0"},
		},
		{
			name: "terminal page",
			page: Page{Count: 7},
			want: Info{Count: 7},
		},
		{
			name: "has more regardless of count",
			page: Page{Count: 0, NextLink: "/wiki/api/v2/spaces?cursor=abc"},
			want: Info{Count: 0, HasMore: true, NextCursor: "abc"},
		},
		{
			name: "encoded token preserved verbatim",
			page: Page{Count: 1, NextLink: "/wiki/api/v2/pages?limit=1&cursor=dG9rZW4%3D"},
			want: Info{Count: 1, HasMore: true, NextCursor: "dG9rZW4%3D"},
		},
		{
			name: "link without cursor param",
			page: Page{Count: 3, NextLink: "/wiki/api/v2/pages?limit=3"},
			want: Info{Count: 3, HasMore: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.page, ModeCursor))
		})
	}
}

func TestExtractOffsetMode(t *testing.T) {
	tests := []struct {
		name string
		page Page
		want Info
	}{
		{
			name: "full page implies more",
			page: Page{Count: 10, Limit: 10},
			want: Info{Count: 10, HasMore: true},
		},
		{
			name: "short page implies no more",
			page: Page{Count: 3, Limit: 10},
			want: Info{Count: 3},
		},
		{
			name: "explicit flag wins over short page",
			page: Page{Count: 3, Limit: 10, MoreFlag: boolPtr(true)},
			want: Info{Count: 3, HasMore: true},
		},
		{
			name: "explicit false flag does not suppress full page heuristic",
			page: Page{Count: 10, Limit: 10, MoreFlag: boolPtr(false)},
			want: Info{Count: 10, HasMore: true},
		},
		{
			name: "zero limit never has more",
			page: Page{Count: 0, Limit: 0},
			want: Info{Count: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.page, ModeOffset)
			assert.Equal(t, tt.want.Count, got.Count)
			assert.Equal(t, tt.want.HasMore, got.HasMore)
			assert.Zero(t, got.NextOffset, "offset mode leaves NextOffset to the caller")
			assert.Empty(t, got.NextCursor)
		})
	}
}

// Extract must not touch its input.
func TestExtractPure(t *testing.T) {
	flag := true
	p := Page{Count: 5, NextLink: "/x?cursor=tok", Limit: 5, MoreFlag: &flag}
	_ = Extract(p, ModeCursor)
	_ = Extract(p, ModeOffset)
	assert.Equal(t, Page{Count: 5, NextLink: "/x?cursor=tok", Limit: 5, MoreFlag: &flag}, p)
	assert.True(t, flag)
}
