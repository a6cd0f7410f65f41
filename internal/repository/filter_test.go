package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TKMhub/simpro-app/internal/domain"
)

func TestBuildListFilter(t *testing.T) {
	t.Run("visibility is always enforced", func(t *testing.T) {
		b := buildListFilter(domain.ListParams{Status: domain.StatusAll}, false)

		assert.Equal(t, " WHERE is_public = TRUE", b.sql())
		assert.Empty(t, b.args)
	})

	t.Run("status filter", func(t *testing.T) {
		b := buildListFilter(domain.ListParams{Status: domain.StatusPublished}, false)

		assert.Equal(t, " WHERE is_public = TRUE AND status = $1", b.sql())
		assert.Equal(t, []any{"published"}, b.args)
	})

	t.Run("all filters compose in order", func(t *testing.T) {
		b := buildListFilter(domain.ListParams{
			Status:   domain.StatusPublished,
			Category: "dev",
			Type:     domain.ProductTypeTool,
			Query:    "gin",
			Tags:     []string{"go", "web"},
		}, true)

		assert.Equal(t,
			" WHERE is_public = TRUE"+
				" AND status = $1"+
				" AND category = $2"+
				" AND type = $3"+
				" AND (title ILIKE $4 OR author ILIKE $5 OR $6 = ANY(tags))"+
				" AND $7 = ANY(tags)"+
				" AND $8 = ANY(tags)",
			b.sql())
		assert.Equal(t, []any{"published", "dev", "Tool", "%gin%", "%gin%", "gin", "go", "web"}, b.args)
	})

	t.Run("type is ignored for blog queries", func(t *testing.T) {
		b := buildListFilter(domain.ListParams{
			Status: domain.StatusPublished,
			Type:   domain.ProductTypeTool,
		}, false)

		assert.NotContains(t, b.sql(), "type =")
	})

	t.Run("next placeholder continues after bound args", func(t *testing.T) {
		b := buildListFilter(domain.ListParams{Status: domain.StatusPublished}, false)

		assert.Equal(t, 2, b.nextPlaceholder())
	})
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name  string
		sort  string
		order string
		want  string
	}{
		{"defaults to updated desc", "", "", " ORDER BY updated_at DESC"},
		{"created asc", domain.SortCreated, domain.OrderAsc, " ORDER BY created_at ASC"},
		{"updated asc", domain.SortUpdated, domain.OrderAsc, " ORDER BY updated_at ASC"},
		{"unknown sort falls back to updated", "evil; DROP TABLE", domain.OrderDesc, " ORDER BY updated_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.sort, tt.order))
		})
	}
}
