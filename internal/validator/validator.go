// Package validator provides validation for imported content records.
package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/TKMhub/simpro-app/internal/domain"
)

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	validStatuses    = []interface{}{domain.StatusDraft, domain.StatusPublished, domain.StatusArchived}
	validTypes       = []interface{}{domain.ProductTypeTool, domain.ProductTypeTemplate, domain.ProductTypeService}
	validActionTypes = []interface{}{domain.ActionTransition, domain.ActionDownload}
)

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateBlogPost validates a BlogPost entity prior to insertion.
func (v *Validator) ValidateBlogPost(p *domain.BlogPost) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Slug,
			validation.Required,
			validation.Length(1, 128),
			validation.Match(slugPattern).Error("must be lowercase alphanumerics separated by hyphens"),
		),
		validation.Field(&p.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&p.Author, validation.Required, validation.Length(1, 128)),
		validation.Field(&p.NotionPageID, validation.Required),
		validation.Field(&p.Status, validation.Required, validation.In(validStatuses...)),
		validation.Field(&p.GoodCount, validation.Min(0)),
	)
}

// ValidateProductPost validates a ProductPost entity prior to insertion.
func (v *Validator) ValidateProductPost(p *domain.ProductPost) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Slug,
			validation.Required,
			validation.Length(1, 128),
			validation.Match(slugPattern).Error("must be lowercase alphanumerics separated by hyphens"),
		),
		validation.Field(&p.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&p.Author, validation.Required, validation.Length(1, 128)),
		validation.Field(&p.NotionPageID, validation.Required),
		validation.Field(&p.Status, validation.Required, validation.In(validStatuses...)),
		validation.Field(&p.Type, validation.Required, validation.In(validTypes...)),
		validation.Field(&p.ActionType, validation.Required, validation.In(validActionTypes...)),
		validation.Field(&p.GoodCount, validation.Min(0)),
	)
}
