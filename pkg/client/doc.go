// Package client provides a Go client for the Confluence Cloud REST API.
//
// It covers the two API generations this server needs: the v1 search
// endpoint (CQL execution, offset-paged) and the v2 content endpoints
// (pages, spaces, comments, cursor-paged via _links.next).
//
// # Quick Start
//
// Create a client and list pages:
//
//	c := client.New(
//	    client.WithBaseURL("https://acme.atlassian.net/wiki"),
//	    client.WithBasicAuth("user@acme.com", apiToken),
//	)
//	pages, err := c.ListPages(ctx, client.ListPagesOptions{Title: "Roadmap"})
//
// # Pagination
//
// v2 listings carry a cursor in the response _links.next URL; pass it back
// via the options Cursor field. The v1 search endpoint pages by numeric
// Start offset instead. internal/pagination normalizes both envelopes for
// presentation.
//
// # Errors
//
// HTTP error responses surface as *APIError carrying the status code. Use
// IsBadRequest to detect rejected CQL and IsNotFound for missing content.
// The client performs no retries; retry policy, if any, belongs to the
// *http.Client supplied via WithHTTPClient.
package client
