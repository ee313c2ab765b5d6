package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Tool 1: conf_search
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "conf_search",
		Description: "Search Confluence content with CQL. Filters (query, title, space_key, labels, type) are combined into a CQL statement; a raw cql fragment can be ANDed in. Results are offset-paged: pass pagination.next_offset back as start for the next page.",
	}, ToolSearch(d))

	// Tool 2: conf_search_all
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "conf_search_all",
		Description: "Search spaces, pages, blog posts, attachments and comments for one query in a single call. Category flags select what to search (all when none set); results come back keyed by category, every requested category present even when empty.",
	}, ToolSearchAll(d))

	// Tool 3: conf_ls_pages
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "conf_ls_pages",
		Description: "List Confluence pages, optionally filtered by exact title and space ids. When an exact title matches nothing on the first page, a wildcard title search fills in near matches. Cursor-paged: pass pagination.next_cursor back as cursor.",
	}, ToolListPages(d))

	// Tool 4: conf_get_page
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "conf_get_page",
		Description: "Get a Confluence page by id. Set include_body=true for the storage-format body.",
	}, ToolGetPage(d))

	// Tool 5: conf_ls_spaces
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "conf_ls_spaces",
		Description: "List Confluence spaces, optionally filtered by type (global, personal) and status (current, archived). Cursor-paged.",
	}, ToolListSpaces(d))

	// Tool 6: conf_get_space
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "conf_get_space",
		Description: "Get a Confluence space by key.",
	}, ToolGetSpace(d))

	// Tool 7: conf_ls_page_comments
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "conf_ls_page_comments",
		Description: "List the footer comments of a Confluence page. Cursor-paged.",
	}, ToolListComments(d))
}
