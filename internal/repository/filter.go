package repository

import (
	"fmt"
	"strings"

	"github.com/TKMhub/simpro-app/internal/domain"
)

// whereBuilder composes an explicit list of AND-joined predicate
// clauses with positional arguments, independent of any query-engine
// object shape.
type whereBuilder struct {
	clauses []string
	args    []any
}

// add appends one clause. format uses %s for each argument placeholder;
// placeholders are numbered after the arguments already collected.
func (b *whereBuilder) add(format string, args ...any) {
	placeholders := make([]any, len(args))
	for i, a := range args {
		b.args = append(b.args, a)
		placeholders[i] = fmt.Sprintf("$%d", len(b.args))
	}
	b.clauses = append(b.clauses, fmt.Sprintf(format, placeholders...))
}

// sql renders the WHERE clause, or "" when no predicate was added.
func (b *whereBuilder) sql() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}

// nextPlaceholder returns the positional index the next bound argument
// will receive.
func (b *whereBuilder) nextPlaceholder() int {
	return len(b.args) + 1
}

// buildListFilter translates ListParams into predicate clauses.
// Visibility is mandatory and not caller-configurable; the type clause
// only applies to product queries.
func buildListFilter(p domain.ListParams, withType bool) *whereBuilder {
	b := &whereBuilder{}
	b.add("is_public = TRUE")
	if p.Status != domain.StatusAll {
		b.add("status = %s", p.Status)
	}
	if p.Category != "" {
		b.add("category = %s", p.Category)
	}
	if withType && p.Type != "" {
		b.add("type = %s", p.Type)
	}
	if p.Query != "" {
		like := "%" + p.Query + "%"
		b.add("(title ILIKE %s OR author ILIKE %s OR %s = ANY(tags))", like, like, p.Query)
	}
	for _, t := range p.Tags {
		// Conjunction of per-tag containment: every listed tag must be present.
		b.add("%s = ANY(tags)", t)
	}
	return b
}

// orderClause renders the ORDER BY clause from whitelisted sort inputs.
func orderClause(sort, order string) string {
	column := "updated_at"
	if sort == domain.SortCreated {
		column = "created_at"
	}
	direction := "DESC"
	if order == domain.OrderAsc {
		direction = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", column, direction)
}
