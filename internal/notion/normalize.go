package notion

import (
	"strings"

	"github.com/TKMhub/simpro-app/internal/domain"
)

// NormalizeDocument maps a flat RawBlock sequence into the closed set
// of renderer-agnostic block variants, preserving order. Unsupported
// block types are dropped silently so that new service-side types never
// break rendering. Given well-formed input this never fails; fetch
// failures are handled by the caller, not here.
func NormalizeDocument(blocks []RawBlock) domain.Document {
	out := make([]domain.Block, 0, len(blocks))
	for _, b := range blocks {
		switch b.Type {
		case "paragraph":
			out = append(out, domain.Block{Type: domain.BlockParagraph, Text: concatBody(b.Paragraph)})
		case "to_do":
			prefix := "[ ]"
			var text string
			if b.ToDo != nil {
				if b.ToDo.Checked {
					prefix = "[x]"
				}
				text = ConcatRichText(b.ToDo.RichText)
			}
			out = append(out, domain.Block{
				Type: domain.BlockParagraph,
				Text: strings.TrimSpace(prefix + " " + text),
			})
		case "toggle":
			// Collapse semantics are discarded on purpose; the body is
			// surfaced as a plain paragraph.
			out = append(out, domain.Block{Type: domain.BlockParagraph, Text: concatBody(b.Toggle)})
		case "heading_1":
			out = append(out, domain.Block{Type: domain.BlockHeading, Level: 1, Text: concatBody(b.Heading1)})
		case "heading_2":
			out = append(out, domain.Block{Type: domain.BlockHeading, Level: 2, Text: concatBody(b.Heading2)})
		case "heading_3":
			out = append(out, domain.Block{Type: domain.BlockHeading, Level: 3, Text: concatBody(b.Heading3)})
		case "bulleted_list_item":
			// Items stay independent; grouping into list containers is a
			// renderer concern.
			out = append(out, domain.Block{Type: domain.BlockBulletedListItem, Text: concatBody(b.BulletedListItem)})
		case "numbered_list_item":
			out = append(out, domain.Block{Type: domain.BlockNumberedListItem, Text: concatBody(b.NumberedListItem)})
		case "image":
			if b.Image == nil {
				break
			}
			var u string
			switch {
			case b.Image.Type == "external" && b.Image.External != nil:
				u = b.Image.External.URL
			case b.Image.File != nil:
				u = b.Image.File.URL
			}
			if u == "" {
				break
			}
			out = append(out, domain.Block{Type: domain.BlockImage, URL: u, Caption: ConcatRichText(b.Image.Caption)})
		case "code":
			var lang, code string
			if b.Code != nil {
				lang = b.Code.Language
				code = ConcatRichText(b.Code.RichText)
			}
			out = append(out, domain.Block{Type: domain.BlockCode, Language: lang, Code: code})
		case "bookmark":
			if b.Bookmark == nil || b.Bookmark.URL == "" {
				break
			}
			out = append(out, domain.Block{Type: domain.BlockParagraph, Text: b.Bookmark.URL})
		case "quote":
			out = append(out, domain.Block{Type: domain.BlockQuote, Text: concatBody(b.Quote)})
		case "divider":
			out = append(out, domain.Block{Type: domain.BlockDivider})
		case "callout":
			var text, icon string
			if b.Callout != nil {
				text = ConcatRichText(b.Callout.RichText)
				if b.Callout.Icon != nil {
					icon = b.Callout.Icon.Emoji
				}
			}
			out = append(out, domain.Block{Type: domain.BlockCallout, Text: text, Icon: icon})
		}
	}
	return domain.Document{Blocks: out}
}

// ConcatRichText joins the plain-text field of each run in order with
// no delimiter. A nil slice yields "".
func ConcatRichText(spans []RichTextSpan) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.PlainText)
	}
	return sb.String()
}

func concatBody(body *RichTextBody) string {
	if body == nil {
		return ""
	}
	return ConcatRichText(body.RichText)
}

func trimConcat(spans []RichTextSpan) string {
	return strings.TrimSpace(ConcatRichText(spans))
}
