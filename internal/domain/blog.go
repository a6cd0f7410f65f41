package domain

import "time"

// BlogPost represents a persisted blog content record. Records are
// created and mutated by the editorial process (batch import or manual
// insert); this service only reads them.
type BlogPost struct {
	ID              string     `json:"id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	Category        string     `json:"category"`
	Description     *string    `json:"description,omitempty"`
	Tags            []string   `json:"tags"`
	IsPublic        bool       `json:"isPublic"`
	Status          string     `json:"status"`
	GoodCount       int        `json:"goodCount"`
	HeaderImagePath *string    `json:"headerImagePath,omitempty"`
	NotionPageID    string     `json:"notionPageId"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	PublishedAt     *time.Time `json:"publishedAt"`
}

// BlogHeader is a BlogPost with its header image resolved to a
// displayable URL.
type BlogHeader struct {
	BlogPost
	HeaderImageURL string `json:"headerImageUrl"`
}

// BlogListResult is one page of blog headers plus the unpaginated match count.
type BlogListResult struct {
	Items    []BlogHeader `json:"items"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
}

// BlogDetail couples a blog header with its normalized body document.
// Notion.Unavailable is set when the body could not be loaded; the
// header is always populated.
type BlogDetail struct {
	Header BlogHeader `json:"header"`
	Notion Document   `json:"notion"`
}

// FacetRow is the raw category/tags projection used to build facets.
type FacetRow struct {
	Category string
	Tags     []string
}

// Facets aggregates distinct categories and their tag sets for the
// filter UI.
type Facets struct {
	Categories   []string            `json:"categories"`
	CategoryTags map[string][]string `json:"categoryTags"`
}

// Content record statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"

	// StatusAll is a filter value only; it bypasses status filtering.
	StatusAll = "all"
)

// ValidStatuses contains all valid content record statuses.
var ValidStatuses = []string{StatusDraft, StatusPublished, StatusArchived}

// IsValidStatus checks if a status is valid for a stored record.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}
