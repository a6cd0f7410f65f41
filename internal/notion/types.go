package notion

// RawBlock is one node of the external document tree as returned by the
// document service. Only the type-specific payload matching Type is
// populated; everything else stays nil. Blocks are fetched fresh per
// request and never persisted.
type RawBlock struct {
	ID               string         `json:"id"`
	Type             string         `json:"type"`
	HasChildren      bool           `json:"has_children"`
	Paragraph        *RichTextBody  `json:"paragraph,omitempty"`
	ToDo             *ToDoBody      `json:"to_do,omitempty"`
	Toggle           *RichTextBody  `json:"toggle,omitempty"`
	Heading1         *RichTextBody  `json:"heading_1,omitempty"`
	Heading2         *RichTextBody  `json:"heading_2,omitempty"`
	Heading3         *RichTextBody  `json:"heading_3,omitempty"`
	BulletedListItem *RichTextBody  `json:"bulleted_list_item,omitempty"`
	NumberedListItem *RichTextBody  `json:"numbered_list_item,omitempty"`
	Image            *ImageBody     `json:"image,omitempty"`
	Code             *CodeBody      `json:"code,omitempty"`
	Bookmark         *BookmarkBody  `json:"bookmark,omitempty"`
	Quote            *RichTextBody  `json:"quote,omitempty"`
	Callout          *CalloutBody   `json:"callout,omitempty"`
	ChildPage        *ChildPageBody `json:"child_page,omitempty"`
}

// RichTextSpan is a single run of rich text.
type RichTextSpan struct {
	PlainText string `json:"plain_text"`
	Href      string `json:"href,omitempty"`
}

// RichTextBody is the payload shared by text-only block types.
type RichTextBody struct {
	RichText []RichTextSpan `json:"rich_text"`
}

// ToDoBody is the payload of a to_do block.
type ToDoBody struct {
	RichText []RichTextSpan `json:"rich_text"`
	Checked  bool           `json:"checked"`
}

// ImageBody is the payload of an image block. Exactly one of External
// or File carries the asset URL, selected by Type.
type ImageBody struct {
	Type     string         `json:"type"`
	External *FileRef       `json:"external,omitempty"`
	File     *FileRef       `json:"file,omitempty"`
	Caption  []RichTextSpan `json:"caption,omitempty"`
}

// FileRef points at a hosted asset.
type FileRef struct {
	URL string `json:"url"`
}

// CodeBody is the payload of a code block.
type CodeBody struct {
	RichText []RichTextSpan `json:"rich_text"`
	Language string         `json:"language,omitempty"`
}

// BookmarkBody is the payload of a bookmark block.
type BookmarkBody struct {
	URL string `json:"url"`
}

// CalloutBody is the payload of a callout block.
type CalloutBody struct {
	RichText []RichTextSpan `json:"rich_text"`
	Icon     *IconRef       `json:"icon,omitempty"`
}

// IconRef is a callout icon; only emoji icons are surfaced.
type IconRef struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji,omitempty"`
}

// ChildPageBody is the payload of a child_page block.
type ChildPageBody struct {
	Title string `json:"title"`
}

// ChildrenPage is one page of a block's children listing.
type ChildrenPage struct {
	Results    []RawBlock `json:"results"`
	HasMore    bool       `json:"has_more"`
	NextCursor string     `json:"next_cursor"`
}

// SearchResult is the response of a page search.
type SearchResult struct {
	Results []SearchPage `json:"results"`
}

// SearchPage is one search hit. Standalone pages carry their title in
// Properties; pages surfaced as child blocks carry it in ChildPage.
type SearchPage struct {
	Object     string                  `json:"object"`
	ID         string                  `json:"id"`
	Properties map[string]PageProperty `json:"properties,omitempty"`
	ChildPage  *ChildPageBody          `json:"child_page,omitempty"`
}

// PageProperty is the subset of a page property needed to read titles.
type PageProperty struct {
	Type  string         `json:"type"`
	Title []RichTextSpan `json:"title,omitempty"`
}

// Title extracts the display title of a search hit, or "" when the page
// carries none.
func (p SearchPage) Title() string {
	for _, prop := range p.Properties {
		if prop.Type != "title" {
			continue
		}
		if t := trimConcat(prop.Title); t != "" {
			return t
		}
	}
	if p.ChildPage != nil {
		return p.ChildPage.Title
	}
	return ""
}
