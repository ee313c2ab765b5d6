package search

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
)

// stubExecutor records issued statements and serves canned pages per type
// literal.
type stubExecutor struct {
	mu    sync.Mutex
	calls []executedCall
	pages map[string]*client.SearchPage // keyed by type literal
	err   error
}

type executedCall struct {
	cql  string
	opts client.SearchOptions
}

func (s *stubExecutor) Search(ctx context.Context, cql string, opts client.SearchOptions) (*client.SearchPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, executedCall{cql: cql, opts: opts})
	if s.err != nil {
		return nil, s.err
	}
	for literal, page := range s.pages {
		if containsTypeClause(cql, literal) {
			return page, nil
		}
	}
	return &client.SearchPage{Results: []client.SearchResult{}}, nil
}

func containsTypeClause(cql, literal string) bool {
	return strings.HasPrefix(cql, `type = "`+literal+`"`)
}

func hit(title string) client.SearchResult {
	return client.SearchResult{
		Title:   title,
		Content: &client.SearchContent{ID: "1", Type: "page", Title: title},
	}
}

func TestSearchAllEmptyQueryAdvisory(t *testing.T) {
	exec := &stubExecutor{}
	engine := New(exec)

	res, err := engine.SearchAll(context.Background(), "   ", AllCategories(), SharedFilters{}, 10)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Advisory)
	assert.Empty(t, exec.calls, "advisory must not touch the remote system")
	assert.Len(t, res.Results, 5, "every requested category still present")
}

func TestSearchAllNoCategoriesAdvisory(t *testing.T) {
	exec := &stubExecutor{}
	engine := New(exec)

	res, err := engine.SearchAll(context.Background(), "kafka", Toggles{}, SharedFilters{}, 10)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Advisory)
	assert.Empty(t, exec.calls)
	assert.Empty(t, res.Results)
}

func TestSearchAllSingleCategory(t *testing.T) {
	exec := &stubExecutor{
		pages: map[string]*client.SearchPage{
			"page": {Results: []client.SearchResult{hit("Kafka Setup"), hit("Kafka Ops")}},
		},
	}
	engine := New(exec)

	res, err := engine.SearchAll(context.Background(), "kafka", Toggles{Pages: true}, SharedFilters{}, 10)
	require.NoError(t, err)
	assert.Empty(t, res.Advisory)

	require.Len(t, exec.calls, 1)
	assert.Equal(t, `type = "page" AND text ~ "kafka"`, exec.calls[0].cql)
	assert.True(t, exec.calls[0].opts.Excerpt)
	assert.False(t, exec.calls[0].opts.IncludeArchived)

	require.Len(t, res.Results, 1)
	assert.Len(t, res.Results[CategoryPages], 2)
	_, present := res.Results[CategorySpaces]
	assert.False(t, present, "unrequested categories are absent from the map")
}

func TestSearchAllAllCategoriesShape(t *testing.T) {
	exec := &stubExecutor{
		pages: map[string]*client.SearchPage{
			"page":  {Results: []client.SearchResult{hit("A")}},
			"space": {Results: []client.SearchResult{{Title: "DEV", Space: &client.SearchSpace{Key: "DEV"}}}},
		},
	}
	engine := New(exec)

	res, err := engine.SearchAll(context.Background(), "dev", AllCategories(), SharedFilters{}, 5)
	require.NoError(t, err)
	assert.Len(t, exec.calls, 5, "one call per enabled category")

	require.Len(t, res.Results, 5)
	assert.Len(t, res.Results[CategoryPages], 1)
	assert.Len(t, res.Results[CategorySpaces], 1)
	for _, cat := range []Category{CategoryBlogPosts, CategoryAttachments, CategoryComments} {
		require.NotNil(t, res.Results[cat], "empty category %s must be non-nil", cat)
		assert.Empty(t, res.Results[cat])
	}
}

func TestSearchAllSharedFilters(t *testing.T) {
	exec := &stubExecutor{}
	engine := New(exec)

	filters := SharedFilters{SpaceKey: "DEV", Labels: []string{"howto"}}
	_, err := engine.SearchAll(context.Background(), "setup", AllCategories(), filters, 5)
	require.NoError(t, err)

	byType := map[string]string{}
	for _, call := range exec.calls {
		for _, literal := range []string{"space", "page", "blogpost", "attachment", "comment"} {
			if containsTypeClause(call.cql, literal) {
				byType[literal] = call.cql
			}
		}
	}

	assert.Equal(t, `type = "space" AND text ~ "setup"`, byType["space"], "space filter not applied to spaces category")
	assert.Equal(t, `type = "page" AND text ~ "setup" AND space = "DEV" AND label = "howto"`, byType["page"])
	assert.Equal(t, `type = "blogpost" AND text ~ "setup" AND space = "DEV" AND label = "howto"`, byType["blogpost"])
	assert.Equal(t, `type = "attachment" AND text ~ "setup" AND space = "DEV"`, byType["attachment"], "labels only apply to pages and blog posts")
	assert.Equal(t, `type = "comment" AND text ~ "setup" AND space = "DEV"`, byType["comment"])
}

func TestSearchAllLimitClamped(t *testing.T) {
	exec := &stubExecutor{}
	engine := New(exec)

	_, err := engine.SearchAll(context.Background(), "q", Toggles{Pages: true}, SharedFilters{}, 500)
	require.NoError(t, err)
	require.Len(t, exec.calls, 1)
	assert.Equal(t, MaxLimitPerCategory, exec.calls[0].opts.Limit)

	exec.calls = nil
	_, err = engine.SearchAll(context.Background(), "q", Toggles{Pages: true}, SharedFilters{}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, exec.calls[0].opts.Limit)
}

func TestSearchAllFailureAborts(t *testing.T) {
	exec := &stubExecutor{err: &client.APIError{StatusCode: 502, Message: "bad gateway"}}
	engine := New(exec)

	res, err := engine.SearchAll(context.Background(), "q", AllCategories(), SharedFilters{}, 5)
	require.Error(t, err)
	assert.Nil(t, res, "no partial results on failure")
}

func TestSearchAllBadRequestHint(t *testing.T) {
	exec := &stubExecutor{err: &client.APIError{StatusCode: 400, Message: "Could not parse cql"}}
	engine := New(exec)

	_, err := engine.SearchAll(context.Background(), "q", Toggles{Pages: true}, SharedFilters{SpaceKey: "bad key"}, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid CQL syntax")
	assert.True(t, client.IsBadRequest(err), "original error stays reachable through the wrap")
}
