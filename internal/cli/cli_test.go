package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBackend points the environment-driven service wiring at an
// httptest server, so command actions run end to end without a real site.
func newTestBackend(t *testing.T, handler http.HandlerFunc) *atomic.Int64 {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	t.Setenv("CONFLUENCE_BASE_URL", srv.URL)
	t.Setenv("ATLASSIAN_USER_EMAIL", "dev@example.com")
	t.Setenv("ATLASSIAN_API_TOKEN", "token")
	t.Setenv("LOG_FILE", "")
	return &calls
}

func TestSearchCommand(t *testing.T) {
	var gotCQL, gotExcerpt string
	newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/api/search", r.URL.Path)
		gotCQL = r.URL.Query().Get("cql")
		gotExcerpt = r.URL.Query().Get("excerpt")
		w.Write([]byte(`{"results":[{"title":"Kafka Guide","content":{"id":"11","type":"page","title":"Kafka Guide"}}],"start":0,"limit":10,"size":1}`))
	})

	cmd := SearchCommand()
	err := cmd.Run(context.Background(), []string{"search", "--query", "kafka", "--space", "DEV"})

	require.NoError(t, err)
	assert.Equal(t, `space = "DEV" AND text ~ "kafka"`, gotCQL)
	assert.Equal(t, "highlight", gotExcerpt)
}

func TestSearchCommandInvalidType(t *testing.T) {
	calls := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {})

	cmd := SearchCommand()
	err := cmd.Run(context.Background(), []string{"search", "--query", "x", "--type", "folder"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid content type")
	assert.Zero(t, calls.Load())
}

func TestSearchCommandNoCriteria(t *testing.T) {
	calls := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {})

	cmd := SearchCommand()
	err := cmd.Run(context.Background(), []string{"search"})

	require.NoError(t, err)
	assert.Zero(t, calls.Load(), "advisory must not touch the API")
}

func TestSearchAllCommandHitsEveryCategory(t *testing.T) {
	calls := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/api/search", r.URL.Path)
		w.Write([]byte(`{"results":[],"start":0,"limit":10,"size":0}`))
	})

	cmd := SearchAllCommand()
	err := cmd.Run(context.Background(), []string{"search-all", "--query", "kafka"})

	require.NoError(t, err)
	assert.EqualValues(t, 5, calls.Load(), "no flags means every category")
}

func TestPagesListCommand(t *testing.T) {
	var gotTitle string
	newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v2/pages", r.URL.Path)
		gotTitle = r.URL.Query().Get("title")
		w.Write([]byte(`{"results":[{"id":"7","status":"current","title":"Runbook"}],"_links":{}}`))
	})

	cmd := PagesCommand()
	err := cmd.Run(context.Background(), []string{"pages", "ls", "--title", "Runbook"})

	require.NoError(t, err)
	assert.Equal(t, "Runbook", gotTitle)
}

func TestSpacesListCommand(t *testing.T) {
	newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v2/spaces", r.URL.Path)
		assert.Equal(t, "global", r.URL.Query().Get("type"))
		w.Write([]byte(`{"results":[{"id":"1","key":"DEV","name":"Dev","type":"global","status":"current"}],"_links":{}}`))
	})

	cmd := SpacesCommand()
	err := cmd.Run(context.Background(), []string{"spaces", "ls", "--type", "global"})

	require.NoError(t, err)
}

func TestCommentsCommand(t *testing.T) {
	newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v2/pages/7/footer-comments", r.URL.Path)
		w.Write([]byte(`{"results":[],"_links":{}}`))
	})

	cmd := CommentsCommand()
	err := cmd.Run(context.Background(), []string{"comments", "--page-id", "7"})

	require.NoError(t, err)
}

func TestCommandNames(t *testing.T) {
	assert.Equal(t, "serve", ServeCommand().Name)
	assert.Equal(t, "search", SearchCommand().Name)
	assert.Equal(t, "search-all", SearchAllCommand().Name)
	assert.Equal(t, "pages", PagesCommand().Name)
	assert.Equal(t, "spaces", SpacesCommand().Name)
	assert.Equal(t, "comments", CommentsCommand().Name)
}
