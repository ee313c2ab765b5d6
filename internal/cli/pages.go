package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/pages"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/pagination"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/render"
)

// PagesCommand creates the pages command group.
func PagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "pages",
		Usage: "List and read Confluence pages",
		Commands: []*cli.Command{
			pagesListCommand(),
			pagesGetCommand(),
		},
	}
}

func pagesListCommand() *cli.Command {
	return &cli.Command{
		Name:  "ls",
		Usage: "List pages, with a wildcard fallback for exact titles that match nothing",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Usage: "Exact title filter"},
			&cli.StringSliceFlag{Name: "space-id", Usage: "Space id filter, repeatable"},
			&cli.StringFlag{Name: "status", Usage: "Page status (current, archived, trashed)"},
			&cli.StringFlag{Name: "sort", Usage: "Sort key, e.g. -modified-date"},
			&cli.IntFlag{Name: "limit", Usage: "Maximum number of results", Value: pages.DefaultLimit},
			&cli.StringFlag{Name: "cursor", Usage: "Continuation cursor from a previous listing"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := newServices()
			if err != nil {
				return err
			}
			defer svc.close()

			list, err := svc.pages.ListWithFallback(ctx, pages.ListOptions{
				Title:    c.String("title"),
				SpaceIDs: c.StringSlice("space-id"),
				Status:   c.String("status"),
				Sort:     c.String("sort"),
				Limit:    c.Int("limit"),
				Cursor:   c.String("cursor"),
			})
			if err != nil {
				return err
			}

			info := pagination.Extract(pagination.Page{
				Count:    len(list.Results),
				NextLink: list.Links.Next,
			}, pagination.ModeCursor)
			fmt.Print(render.Pages(list, info))
			return nil
		},
	}
}

func pagesGetCommand() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Get a page by id",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Usage: "Page id", Required: true},
			&cli.BoolFlag{Name: "body", Usage: "Include the storage-format body"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := newServices()
			if err != nil {
				return err
			}
			defer svc.close()

			page, err := svc.client.GetPage(ctx, c.String("id"), c.Bool("body"))
			if err != nil {
				return err
			}

			fmt.Print(render.PageDetail(page))
			return nil
		},
	}
}
