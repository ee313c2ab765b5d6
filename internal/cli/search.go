package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/pagination"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/render"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/internal/search"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/client"
	"github.com/aizpun-flowtech/mcp-server-atlassian-confluence/pkg/cql"
)

// SearchCommand creates the search command, a single CQL search.
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search Confluence content with CQL",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "query", Usage: "Free-text term matched against content bodies"},
			&cli.StringFlag{Name: "title", Usage: "Title filter (fuzzy)"},
			&cli.StringFlag{Name: "space", Usage: "Space key filter"},
			&cli.StringSliceFlag{Name: "label", Usage: "Label filter, repeatable; all must match"},
			&cli.StringFlag{Name: "type", Usage: "Content type (page, blogpost, attachment, comment, space)"},
			&cli.StringFlag{Name: "cql", Usage: "Raw CQL fragment ANDed with the other filters"},
			&cli.IntFlag{Name: "limit", Usage: "Maximum number of results", Value: 10},
			&cli.IntFlag{Name: "start", Usage: "Result offset for paging"},
			&cli.BoolFlag{Name: "archived", Usage: "Include content from archived spaces"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runSearch(ctx, c)
		},
	}
}

func runSearch(ctx context.Context, c *cli.Command) error {
	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.close()

	contentType := cql.ContentType(c.String("type"))
	if contentType != "" && !contentType.Valid() {
		return fmt.Errorf("invalid content type %q", contentType)
	}

	statement := cql.Build(cql.Filters{
		Title:       c.String("title"),
		SpaceKey:    c.String("space"),
		Labels:      c.StringSlice("label"),
		ContentType: contentType,
		Text:        c.String("query"),
		RawCQL:      c.String("cql"),
	})
	if statement == "" {
		fmt.Print(render.Advisory("no search criteria provided; give a query, a filter or a cql fragment"))
		return nil
	}

	res, err := svc.client.Search(ctx, statement, client.SearchOptions{
		Limit:           c.Int("limit"),
		Start:           c.Int("start"),
		Excerpt:         true,
		IncludeArchived: c.Bool("archived"),
	})
	if err != nil {
		return err
	}

	info := pagination.Extract(pagination.Page{
		Count: len(res.Results),
		Limit: c.Int("limit"),
	}, pagination.ModeOffset)
	fmt.Print(render.SearchResults(res, info, statement))
	return nil
}

// SearchAllCommand creates the search-all command, the federated search
// across spaces, pages, blog posts, attachments and comments.
func SearchAllCommand() *cli.Command {
	return &cli.Command{
		Name:  "search-all",
		Usage: "Search every content category for one query in a single call",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "query", Usage: "Free-text search term", Required: true},
			&cli.StringFlag{Name: "space", Usage: "Space key shared across categories"},
			&cli.StringSliceFlag{Name: "label", Usage: "Label filter, repeatable; applies to pages and blog posts"},
			&cli.IntFlag{Name: "limit", Usage: "Maximum results per category", Value: 10},
			&cli.BoolFlag{Name: "spaces", Usage: "Search spaces"},
			&cli.BoolFlag{Name: "pages", Usage: "Search pages"},
			&cli.BoolFlag{Name: "blogposts", Usage: "Search blog posts"},
			&cli.BoolFlag{Name: "attachments", Usage: "Search attachments"},
			&cli.BoolFlag{Name: "comments", Usage: "Search comments"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runSearchAll(ctx, c)
		},
	}
}

func runSearchAll(ctx context.Context, c *cli.Command) error {
	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.close()

	toggles := search.Toggles{
		Spaces:      c.Bool("spaces"),
		Pages:       c.Bool("pages"),
		BlogPosts:   c.Bool("blogposts"),
		Attachments: c.Bool("attachments"),
		Comments:    c.Bool("comments"),
	}
	// No flags means all categories, the common case.
	if toggles.None() {
		toggles = search.AllCategories()
	}

	res, err := svc.search.SearchAll(ctx, c.String("query"), toggles, search.SharedFilters{
		SpaceKey: c.String("space"),
		Labels:   c.StringSlice("label"),
	}, c.Int("limit"))
	if err != nil {
		return err
	}

	fmt.Print(render.Federated(res))
	return nil
}
