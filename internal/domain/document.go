package domain

// BlockType identifies one of the closed set of renderer-agnostic block
// variants.
type BlockType string

const (
	BlockParagraph        BlockType = "paragraph"
	BlockHeading          BlockType = "heading"
	BlockBulletedListItem BlockType = "bulleted_list_item"
	BlockNumberedListItem BlockType = "numbered_list_item"
	BlockImage            BlockType = "image"
	BlockCode             BlockType = "code"
	BlockQuote            BlockType = "quote"
	BlockDivider          BlockType = "divider"
	BlockCallout          BlockType = "callout"
)

// Block is one normalized unit of rich content. Only the fields
// relevant to the block's type are set.
type Block struct {
	Type     BlockType `json:"type"`
	Text     string    `json:"text,omitempty"`
	Level    int       `json:"level,omitempty"`
	URL      string    `json:"url,omitempty"`
	Caption  string    `json:"caption,omitempty"`
	Language string    `json:"language,omitempty"`
	Code     string    `json:"code,omitempty"`
	Icon     string    `json:"icon,omitempty"`
}

// Document is the renderer-agnostic body of a content record.
//
// Unavailable is authoritative: callers must check it rather than infer
// failure from an empty Blocks slice, since a legitimately empty
// document also has no blocks.
type Document struct {
	Blocks      []Block `json:"blocks"`
	Unavailable bool    `json:"unavailable,omitempty"`
}

// UnavailableDocument is the marker returned when any step of
// identifier resolution, fetching, or normalization fails.
func UnavailableDocument() Document {
	return Document{Blocks: []Block{}, Unavailable: true}
}
