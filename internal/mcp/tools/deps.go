package tools

import (
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/comments"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/config"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/pages"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/search"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/spaces"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
)

// Deps contains the services available to tool handlers.
type Deps struct {
	Client   *client.Client
	Config   *config.Config
	Search   *search.Engine
	Pages    *pages.Service
	Spaces   *spaces.Service
	Comments *comments.Service
}
