package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/mcpsrv"
)

// ServeCommand creates the serve command, the MCP stdio server.
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the MCP server on stdio",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Log file path (stderr only when empty)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return serve(ctx, c.String("log-level"), c.String("log-file"))
		},
	}
}

func serve(ctx context.Context, logLevel, logFile string) error {
	var opts []mcpsrv.Option
	if logLevel != "" {
		opts = append(opts, mcpsrv.WithLogLevel(logLevel))
	}
	if logFile != "" {
		opts = append(opts, mcpsrv.WithLogFile(logFile))
	}

	server, err := mcpsrv.NewServer(opts...)
	if err != nil {
		return err
	}
	defer server.Close()

	slog.Info("starting Confluence MCP server on stdio")
	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	slog.Info("server stopped")
	return nil
}
