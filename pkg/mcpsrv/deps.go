package mcpsrv

import (
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/comments"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/config"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/pages"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/search"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/spaces"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
)

// Deps contains all dependencies available to custom tools.
// This gives custom tools access to the same infrastructure as builtin tools.
type Deps struct {
	Client   *client.Client
	Config   *config.Config
	Search   *search.Engine
	Pages    *pages.Service
	Spaces   *spaces.Service
	Comments *comments.Service
}
