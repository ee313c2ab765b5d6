package mcpsrv

import (
	"context"
	"fmt"
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/comments"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/config"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/logging"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/mcp"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/mcp/tools"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/pages"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/search"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/spaces"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
)

// Server is an MCP server exposing the builtin Confluence tools.
type Server struct {
	internal   *mcp.Server
	deps       *Deps
	logCleanup func() error
}

// NewServer creates a new MCP server with the builtin Confluence tools.
//
// Configuration is loaded from the environment unless overridden with
// WithConfig. Use functional options to adjust logging or register custom
// tools.
func NewServer(opts ...Option) (*Server, error) {
	sc := &serverConfig{
		config: config.Load(), // Load defaults from environment
	}
	for _, opt := range opts {
		opt(sc)
	}
	cfg := sc.config

	// Logging overrides win over environment values.
	if sc.logLevel != "" {
		cfg.LogLevel = sc.logLevel
	}
	if sc.logFile != "" {
		cfg.LogFile = sc.logFile
	}
	logCleanup, err := logging.Setup(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	baseURL, err := cfg.ResolveBaseURL()
	if err != nil {
		return nil, err
	}
	httpClient := sc.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPClientTimeout}
	}
	c := client.New(
		client.WithBaseURL(baseURL),
		client.WithBasicAuth(cfg.UserEmail, cfg.APIToken),
		client.WithHTTPClient(httpClient),
	)

	// Create services
	spacesSvc := spaces.NewService(c)
	deps := &Deps{
		Client:   c,
		Config:   cfg,
		Search:   search.New(c),
		Pages:    pages.NewService(c, c, spacesSvc),
		Spaces:   spacesSvc,
		Comments: comments.NewService(c),
	}

	toolDeps := &tools.Deps{
		Client:   deps.Client,
		Config:   deps.Config,
		Search:   deps.Search,
		Pages:    deps.Pages,
		Spaces:   deps.Spaces,
		Comments: deps.Comments,
	}

	// Build internal server options from the custom registrations.
	var internalOpts []mcp.ServerOption
	for _, fn := range sc.toolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range sc.deferredToolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(func(srv *sdkmcp.Server) {
			fn(srv, deps)
		}))
	}

	internal, err := mcp.NewServer(toolDeps, internalOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return &Server{
		internal:   internal,
		deps:       deps,
		logCleanup: logCleanup,
	}, nil
}

// Run starts the MCP server with stdio transport.
// The server runs until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.internal.Run(ctx)
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.logCleanup != nil {
		return s.logCleanup()
	}
	return nil
}

// Deps returns the dependencies for building custom tools.
func (s *Server) Deps() *Deps {
	return s.deps
}
