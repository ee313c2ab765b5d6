package client

// ListLinks is the cursor envelope carried by v2 list responses. Next is
// empty on the terminal page.
type ListLinks struct {
	Next string `json:"next,omitempty"`
	Base string `json:"base,omitempty"`
}

// Version is content version metadata.
type Version struct {
	Number    int    `json:"number"`
	AuthorID  string `json:"authorId,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Body holds a content body in one representation.
type Body struct {
	Storage *BodyFormat `json:"storage,omitempty"`
	View    *BodyFormat `json:"view,omitempty"`
}

// BodyFormat is one representation of a content body. The value is handed
// through as returned by the API; converting it to a display format is the
// renderer's concern.
type BodyFormat struct {
	Representation string `json:"representation"`
	Value          string `json:"value"`
}

// Page is a Confluence page in the canonical v2 shape. Downstream renderers
// rely on AuthorID and Version being set; records synthesized from search
// hits fill them with placeholders rather than leaving them empty-handed.
type Page struct {
	ID        string   `json:"id"`
	Status    string   `json:"status"`
	Title     string   `json:"title"`
	SpaceID   string   `json:"spaceId,omitempty"`
	ParentID  string   `json:"parentId,omitempty"`
	AuthorID  string   `json:"authorId"`
	CreatedAt string   `json:"createdAt,omitempty"`
	Version   *Version `json:"version,omitempty"`
	Body      *Body    `json:"body,omitempty"`
}

// PageList is a cursor-paged page listing.
type PageList struct {
	Results []Page    `json:"results"`
	Links   ListLinks `json:"_links"`
}

// Space is a Confluence space (v2 shape).
type Space struct {
	ID     string `json:"id"`
	Key    string `json:"key"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// SpaceList is a cursor-paged space listing.
type SpaceList struct {
	Results []Space   `json:"results"`
	Links   ListLinks `json:"_links"`
}

// Comment is a footer or inline comment on a page (v2 shape).
type Comment struct {
	ID      string   `json:"id"`
	Status  string   `json:"status"`
	Title   string   `json:"title"`
	PageID  string   `json:"pageId,omitempty"`
	Version *Version `json:"version,omitempty"`
	Body    *Body    `json:"body,omitempty"`
}

// CommentList is a cursor-paged comment listing.
type CommentList struct {
	Results []Comment `json:"results"`
	Links   ListLinks `json:"_links"`
}

// SearchContent is the content envelope inside a v1 search hit. Search hits
// are thinner than the canonical shapes above: no authorship, no version.
type SearchContent struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Status string `json:"status"`
	Title  string `json:"title"`
}

// SearchSpace is the space envelope on space-type search hits.
type SearchSpace struct {
	ID   int64  `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Container names the space a search hit lives in.
type Container struct {
	Title      string `json:"title"`
	DisplayURL string `json:"displayUrl,omitempty"`
}

// SearchResult is one hit from the v1 CQL search endpoint.
type SearchResult struct {
	Content               *SearchContent `json:"content,omitempty"`
	Space                 *SearchSpace   `json:"space,omitempty"`
	Title                 string         `json:"title"`
	Excerpt               string         `json:"excerpt,omitempty"`
	URL                   string         `json:"url,omitempty"`
	ResultGlobalContainer *Container     `json:"resultGlobalContainer,omitempty"`
	LastModified          string         `json:"lastModified,omitempty"`
}

// SearchPage is an offset-paged v1 search response. TotalSize is not
// reported for every entity type, so callers should not rely on it alone to
// decide whether more pages follow.
type SearchPage struct {
	Results   []SearchResult `json:"results"`
	Start     int            `json:"start"`
	Limit     int            `json:"limit"`
	Size      int            `json:"size"`
	TotalSize int            `json:"totalSize,omitempty"`
	Links     ListLinks      `json:"_links"`
}
