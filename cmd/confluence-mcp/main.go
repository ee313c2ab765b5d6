package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	clilib "github.com/urfave/cli/v3"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/cli"
)

func main() {
	// Set up context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &clilib.Command{
		Name:  "confluence-mcp",
		Usage: "Confluence Cloud search and content tools, as an MCP server or a CLI",
		Commands: []*clilib.Command{
			cli.ServeCommand(),
			cli.SearchCommand(),
			cli.SearchAllCommand(),
			cli.PagesCommand(),
			cli.SpacesCommand(),
			cli.CommentsCommand(),
		},
		// Running without a subcommand starts the MCP server, so the binary
		// can be pointed at directly from an MCP client configuration.
		DefaultCommand: "serve",
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
