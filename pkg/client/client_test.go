package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(WithBaseURL(srv.URL), WithBasicAuth("user@example.com", "token"))
}

func TestSearchRequestParameters(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _, ok := r.BasicAuth()
		assert.True(t, ok, "basic auth header expected")
		w.Write([]byte(`{"results":[{"title":"Roadmap","content":{"id":"1","type":"page","title":"Roadmap"}}],"start":0,"limit":5,"size":1}`))
	})

	page, err := c.Search(context.Background(), `type = "page" AND text ~ "roadmap"`, SearchOptions{Limit: 5, Excerpt: true})
	require.NoError(t, err)

	assert.Equal(t, "/rest/api/search", gotPath)
	assert.Equal(t, `type = "page" AND text ~ "roadmap"`, gotQuery["cql"][0])
	assert.Equal(t, "5", gotQuery["limit"][0])
	assert.Equal(t, "highlight", gotQuery["excerpt"][0])
	assert.Equal(t, "false", gotQuery["includeArchivedSpaces"][0])
	require.Len(t, page.Results, 1)
	assert.Equal(t, "page", page.Results[0].Content.Type)
}

func TestSearchRejectsEmptyStatement(t *testing.T) {
	c := New(WithBaseURL("http://unreachable.invalid"))
	_, err := c.Search(context.Background(), "", SearchOptions{})
	require.Error(t, err)
}

func TestSearchBadRequest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Could not parse cql"}`))
	})

	_, err := c.Search(context.Background(), `title ~ `, SearchOptions{})
	require.Error(t, err)
	assert.True(t, IsBadRequest(err))
	assert.Contains(t, err.Error(), "Could not parse cql")
}

func TestParseErrorV2Envelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors":[{"title":"page not found"}]}`))
	})

	_, err := c.GetPage(context.Background(), "99", false)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "page not found")
}

func TestListPagesCursorAndFilters(t *testing.T) {
	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/pages", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"results":[],"_links":{"next":"/wiki/api/v2/pages?cursor=tok"}}`))
	})

	list, err := c.ListPages(context.Background(), ListPagesOptions{
		Title:    "Balance",
		SpaceIDs: []string{"111", "222"},
		Limit:    25,
		Cursor:   "prev",
	})
	require.NoError(t, err)

	assert.Equal(t, "Balance", gotQuery["title"][0])
	assert.Equal(t, "111,222", gotQuery["space-id"][0])
	assert.Equal(t, "25", gotQuery["limit"][0])
	assert.Equal(t, "prev", gotQuery["cursor"][0])
	assert.NotNil(t, list.Results, "empty result list must be non-nil")
	assert.Equal(t, "/wiki/api/v2/pages?cursor=tok", list.Links.Next)
}

func TestListSpacesIDBatchCap(t *testing.T) {
	c := New(WithBaseURL("http://unreachable.invalid"))
	ids := make([]string, MaxSpaceIDsPerRequest+1)
	_, err := c.ListSpaces(context.Background(), ListSpacesOptions{IDs: ids})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "space ids per request")
}

func TestGetSpaceByKey(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "DEV", r.URL.Query().Get("keys"))
			w.Write([]byte(`{"results":[{"id":"111","key":"DEV","name":"Development"}]}`))
		})
		space, err := c.GetSpaceByKey(context.Background(), "DEV")
		require.NoError(t, err)
		assert.Equal(t, "111", space.ID)
	})

	t.Run("missing", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results":[]}`))
		})
		_, err := c.GetSpaceByKey(context.Background(), "NOPE")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func TestListFooterComments(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/pages/42/footer-comments", r.URL.Path)
		assert.Equal(t, "storage", r.URL.Query().Get("body-format"))
		w.Write([]byte(`{"results":[{"id":"7","title":"Re: Balance"}],"_links":{}}`))
	})

	list, err := c.ListFooterComments(context.Background(), "42", ListCommentsOptions{IncludeBody: true})
	require.NoError(t, err)
	require.Len(t, list.Results, 1)
	assert.Equal(t, "7", list.Results[0].ID)
}
