package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/pagination"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/render"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/spaces"
)

// SpacesCommand creates the spaces command group.
func SpacesCommand() *cli.Command {
	return &cli.Command{
		Name:  "spaces",
		Usage: "List and read Confluence spaces",
		Commands: []*cli.Command{
			spacesListCommand(),
			spacesGetCommand(),
		},
	}
}

func spacesListCommand() *cli.Command {
	return &cli.Command{
		Name:  "ls",
		Usage: "List spaces",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Usage: "Space type (global, personal)"},
			&cli.StringFlag{Name: "status", Usage: "Space status (current, archived)"},
			&cli.IntFlag{Name: "limit", Usage: "Maximum number of results", Value: spaces.DefaultLimit},
			&cli.StringFlag{Name: "cursor", Usage: "Continuation cursor from a previous listing"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := newServices()
			if err != nil {
				return err
			}
			defer svc.close()

			list, err := svc.spaces.List(ctx, spaces.ListOptions{
				Type:   c.String("type"),
				Status: c.String("status"),
				Limit:  c.Int("limit"),
				Cursor: c.String("cursor"),
			})
			if err != nil {
				return err
			}

			info := pagination.Extract(pagination.Page{
				Count:    len(list.Results),
				NextLink: list.Links.Next,
			}, pagination.ModeCursor)
			fmt.Print(render.Spaces(list, info))
			return nil
		},
	}
}

func spacesGetCommand() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Get a space by key",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "key", Usage: "Space key", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := newServices()
			if err != nil {
				return err
			}
			defer svc.close()

			space, err := svc.client.GetSpaceByKey(ctx, c.String("key"))
			if err != nil {
				return err
			}

			fmt.Print(render.SpaceDetail(space))
			return nil
		},
	}
}
