package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/comments"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/pagination"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/render"
)

// CommentsCommand creates the comments command.
func CommentsCommand() *cli.Command {
	return &cli.Command{
		Name:  "comments",
		Usage: "List the footer comments of a page",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "page-id", Usage: "Page id", Required: true},
			&cli.IntFlag{Name: "limit", Usage: "Maximum number of results", Value: comments.DefaultLimit},
			&cli.StringFlag{Name: "cursor", Usage: "Continuation cursor from a previous listing"},
			&cli.BoolFlag{Name: "body", Usage: "Include comment bodies"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := newServices()
			if err != nil {
				return err
			}
			defer svc.close()

			list, err := svc.comments.List(ctx, c.String("page-id"), comments.ListOptions{
				Limit:       c.Int("limit"),
				Cursor:      c.String("cursor"),
				IncludeBody: c.Bool("body"),
			})
			if err != nil {
				return err
			}

			info := pagination.Extract(pagination.Page{
				Count:    len(list.Results),
				NextLink: list.Links.Next,
			}, pagination.ModeCursor)
			fmt.Print(render.Comments(list, info))
			return nil
		},
	}
}
