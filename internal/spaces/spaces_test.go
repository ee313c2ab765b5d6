package spaces

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
)

type stubLister struct {
	calls []client.ListSpacesOptions
	err   error
}

func (s *stubLister) ListSpaces(ctx context.Context, opts client.ListSpacesOptions) (*client.SpaceList, error) {
	s.calls = append(s.calls, opts)
	if s.err != nil {
		return nil, s.err
	}
	results := make([]client.Space, 0, len(opts.IDs))
	for _, id := range opts.IDs {
		results = append(results, client.Space{ID: id, Key: "KEY-" + id})
	}
	return &client.SpaceList{Results: results}, nil
}

func TestResolveKeysSingleBatch(t *testing.T) {
	lister := &stubLister{}
	svc := NewService(lister)

	keys, err := svc.ResolveKeys(context.Background(), []string{"1", "2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"1": "KEY-1", "2": "KEY-2"}, keys)
	require.Len(t, lister.calls, 1)
	assert.Equal(t, []string{"1", "2"}, lister.calls[0].IDs)
}

func TestResolveKeysBatchesAtCap(t *testing.T) {
	lister := &stubLister{}
	svc := NewService(lister)

	ids := make([]string, client.MaxSpaceIDsPerRequest+1)
	for i := range ids {
		ids[i] = fmt.Sprintf("%d", i)
	}

	keys, err := svc.ResolveKeys(context.Background(), ids)
	require.NoError(t, err)
	assert.Len(t, keys, len(ids))
	require.Len(t, lister.calls, 2)
	assert.Len(t, lister.calls[0].IDs, client.MaxSpaceIDsPerRequest)
	assert.Len(t, lister.calls[1].IDs, 1)
}

func TestResolveKeysEmptyInput(t *testing.T) {
	lister := &stubLister{}
	svc := NewService(lister)

	keys, err := svc.ResolveKeys(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Empty(t, lister.calls)
}

func TestResolveKeysPropagatesError(t *testing.T) {
	lister := &stubLister{err: &client.APIError{StatusCode: 503, Message: "down"}}
	svc := NewService(lister)

	_, err := svc.ResolveKeys(context.Background(), []string{"1"})
	require.Error(t, err)
}

func TestListDefaults(t *testing.T) {
	lister := &stubLister{}
	svc := NewService(lister)

	_, err := svc.List(context.Background(), ListOptions{Type: "global"})
	require.NoError(t, err)
	require.Len(t, lister.calls, 1)
	assert.Equal(t, DefaultLimit, lister.calls[0].Limit)
	assert.Equal(t, "global", lister.calls[0].Type)
}
