package domain

import "time"

// Product types and detail-page action kinds.
const (
	ProductTypeTool     = "Tool"
	ProductTypeTemplate = "Template"
	ProductTypeService  = "Service"

	ActionTransition = "transition"
	ActionDownload   = "download"
)

// ValidProductTypes contains all valid product type values.
var ValidProductTypes = []string{ProductTypeTool, ProductTypeTemplate, ProductTypeService}

// ValidActionTypes contains all valid action type values.
var ValidActionTypes = []string{ActionTransition, ActionDownload}

// ProductPost represents a persisted product showcase record.
type ProductPost struct {
	ID              string     `json:"id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	Category        string     `json:"category"`
	Description     *string    `json:"description,omitempty"`
	Type            string     `json:"type"`
	Tags            []string   `json:"tags"`
	IsPublic        bool       `json:"isPublic"`
	Status          string     `json:"status"`
	GoodCount       int        `json:"goodCount"`
	HeaderImagePath *string    `json:"headerImagePath,omitempty"`
	NotionPageID    string     `json:"notionPageId"`
	ContentLink     *string    `json:"contentLink"`
	ActionType      string     `json:"actionType"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	PublishedAt     *time.Time `json:"publishedAt"`
}

// ProductHeader is a ProductPost with its cover image resolved to a
// displayable URL.
type ProductHeader struct {
	ProductPost
	HeaderImageURL string `json:"headerImageUrl"`
}

// ProductListResult is one page of product headers plus the unpaginated
// match count.
type ProductListResult struct {
	Items    []ProductHeader `json:"items"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

// ProductDetail couples a product header with its normalized body document.
type ProductDetail struct {
	Header ProductHeader `json:"header"`
	Notion Document      `json:"notion"`
}

// IsValidProductType checks if a product type value is valid.
func IsValidProductType(t string) bool {
	for _, v := range ValidProductTypes {
		if v == t {
			return true
		}
	}
	return false
}

// IsValidActionType checks if an action type value is valid.
func IsValidActionType(t string) bool {
	for _, v := range ValidActionTypes {
		if v == t {
			return true
		}
	}
	return false
}
