// Package mcpsrv provides an extensible MCP server for Confluence Cloud.
//
// This package exposes a high-level API for creating and running an MCP
// server with the builtin Confluence search and content tools. Users can
// extend the server with custom tools using functional options.
//
// # Basic Usage
//
// Create a server configured from the environment and run it on stdio:
//
//	server, err := mcpsrv.NewServer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer server.Close()
//	server.Run(ctx)
//
// # Extension
//
// Register custom tools with access to the server's infrastructure:
//
//	server, err := mcpsrv.NewServer(
//	    mcpsrv.WithDepsRegistration(func(srv *mcp.Server, d *mcpsrv.Deps) {
//	        mcp.AddTool(srv, &mcp.Tool{Name: "my_tool", Description: "My tool"}, myHandler(d))
//	    }),
//	)
//
// # Configuration
//
// Configure logging and the HTTP client:
//
//	server, err := mcpsrv.NewServer(
//	    mcpsrv.WithLogLevel("debug"),
//	    mcpsrv.WithLogFile("/var/log/confluence-mcp.log"),
//	)
package mcpsrv
