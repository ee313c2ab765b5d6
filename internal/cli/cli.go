// Package cli implements the confluence-mcp command tree. The default
// command runs the MCP server on stdio; the rest are thin terminal
// front-ends over the same services the MCP tools use.
package cli

import (
	"net/http"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/comments"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/config"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/logging"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/pages"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/search"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/spaces"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
)

// services bundles everything a command needs. Built once per invocation.
type services struct {
	cfg      *config.Config
	client   *client.Client
	search   *search.Engine
	pages    *pages.Service
	spaces   *spaces.Service
	comments *comments.Service

	logCleanup func() error
}

func newServices() (*services, error) {
	cfg := config.Load()

	logCleanup, err := logging.Setup(cfg)
	if err != nil {
		return nil, err
	}

	baseURL, err := cfg.ResolveBaseURL()
	if err != nil {
		return nil, err
	}
	c := client.New(
		client.WithBaseURL(baseURL),
		client.WithBasicAuth(cfg.UserEmail, cfg.APIToken),
		client.WithHTTPClient(&http.Client{Timeout: cfg.HTTPClientTimeout}),
	)

	spacesSvc := spaces.NewService(c)
	return &services{
		cfg:        cfg,
		client:     c,
		search:     search.New(c),
		pages:      pages.NewService(c, c, spacesSvc),
		spaces:     spacesSvc,
		comments:   comments.NewService(c),
		logCleanup: logCleanup,
	}, nil
}

func (s *services) close() {
	if s.logCleanup != nil {
		_ = s.logCleanup()
	}
}
