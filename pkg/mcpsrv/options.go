package mcpsrv

import (
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/config"
)

// serverConfig holds configuration built from options.
type serverConfig struct {
	config     *config.Config
	httpClient *http.Client

	// Logging overrides
	logLevel string
	logFile  string

	// Custom extensions - registration callbacks that preserve generic type info
	toolRegistrations []func(*sdkmcp.Server)

	// Deferred tool registrations that need access to Deps
	deferredToolRegistrations []func(*sdkmcp.Server, *Deps)
}

// Option configures the server.
type Option func(*serverConfig)

// WithConfig replaces the environment-derived configuration.
func WithConfig(cfg *config.Config) Option {
	return func(sc *serverConfig) {
		sc.config = cfg
	}
}

// WithLogLevel sets the log level (debug, info, warn, error).
func WithLogLevel(level string) Option {
	return func(sc *serverConfig) {
		sc.logLevel = level
	}
}

// WithLogFile sets the log file path.
// If empty, logs are written to stderr only.
func WithLogFile(path string) Option {
	return func(sc *serverConfig) {
		sc.logFile = path
	}
}

// WithHTTPClient sets a custom HTTP client for the Confluence API.
// Note: This does not affect a client passed to NewServer directly.
func WithHTTPClient(c *http.Client) Option {
	return func(sc *serverConfig) {
		sc.httpClient = c
	}
}

// WithRegistration adds a custom registration callback. The callback
// receives the underlying MCP server and can register additional tools.
func WithRegistration(fn func(*sdkmcp.Server)) Option {
	return func(sc *serverConfig) {
		sc.toolRegistrations = append(sc.toolRegistrations, fn)
	}
}

// WithDepsRegistration adds a custom registration callback that also
// receives the server dependencies. Use this when a custom tool needs the
// Confluence client, the federated search engine, or one of the services.
func WithDepsRegistration(fn func(*sdkmcp.Server, *Deps)) Option {
	return func(sc *serverConfig) {
		sc.deferredToolRegistrations = append(sc.deferredToolRegistrations, fn)
	}
}
