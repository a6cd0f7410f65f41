// Package importer loads content records from CSV files produced by the
// editorial spreadsheet workflow and inserts them in bulk.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TKMhub/simpro-app/internal/domain"
	"github.com/TKMhub/simpro-app/internal/logger"
	"github.com/TKMhub/simpro-app/internal/repository"
	"github.com/TKMhub/simpro-app/internal/validator"
)

// Resource kinds accepted by the importer.
const (
	ResourceBlog    = "blog"
	ResourceProduct = "product"
)

// Row is one CSV data row keyed by header column name.
type Row map[string]string

// Summary reports the outcome of one import run.
type Summary struct {
	Read             int
	Inserted         int
	SkippedInvalid   int
	SkippedDuplicate int
}

// Importer reads CSV rows, validates them, and inserts content records.
type Importer struct {
	blogRepo    repository.BlogRepository
	productRepo repository.ProductRepository
	validator   *validator.Validator
	dryRun      bool
}

// New creates an Importer. With dryRun set, rows are parsed and
// validated but nothing is written.
func New(blogRepo repository.BlogRepository, productRepo repository.ProductRepository, v *validator.Validator, dryRun bool) *Importer {
	return &Importer{blogRepo: blogRepo, productRepo: productRepo, validator: v, dryRun: dryRun}
}

// Run imports the given resource kind from r.
// Invalid rows are skipped with a warning; they never abort the run.
func (i *Importer) Run(ctx context.Context, resource string, r io.Reader) (Summary, error) {
	rows, err := ReadCSV(r)
	if err != nil {
		return Summary{}, fmt.Errorf("read csv: %w", err)
	}

	var summary Summary
	for n, row := range rows {
		summary.Read++

		switch resource {
		case ResourceBlog:
			err = i.importBlogRow(ctx, row, &summary)
		case ResourceProduct:
			err = i.importProductRow(ctx, row, &summary)
		default:
			return summary, fmt.Errorf("unsupported resource: %s", resource)
		}
		if err != nil {
			return summary, fmt.Errorf("row %d: %w", n+1, err)
		}
	}
	return summary, nil
}

func (i *Importer) importBlogRow(ctx context.Context, row Row, summary *Summary) error {
	post, err := NormalizeBlogRow(row)
	if err == nil {
		err = i.validator.ValidateBlogPost(post)
	}
	if err != nil {
		logger.Warn("skipping invalid row",
			slog.String("slug", row["slug"]),
			slog.String("error", err.Error()))
		summary.SkippedInvalid++
		return nil
	}
	if i.dryRun {
		summary.Inserted++
		return nil
	}

	inserted, err := i.blogRepo.Insert(ctx, post)
	if err != nil {
		return err
	}
	if !inserted {
		summary.SkippedDuplicate++
		return nil
	}
	summary.Inserted++
	return nil
}

func (i *Importer) importProductRow(ctx context.Context, row Row, summary *Summary) error {
	post, err := NormalizeProductRow(row)
	if err == nil {
		err = i.validator.ValidateProductPost(post)
	}
	if err != nil {
		logger.Warn("skipping invalid row",
			slog.String("slug", row["slug"]),
			slog.String("error", err.Error()))
		summary.SkippedInvalid++
		return nil
	}
	if i.dryRun {
		summary.Inserted++
		return nil
	}

	inserted, err := i.productRepo.Insert(ctx, post)
	if err != nil {
		return err
	}
	if !inserted {
		summary.SkippedDuplicate++
		return nil
	}
	summary.Inserted++
	return nil
}

// ReadCSV parses CSV content into header-keyed rows. The first record
// is the header; fully empty rows are dropped.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("need a header row and at least one data row")
	}

	header := records[0]
	if len(header) > 0 {
		// Strip a UTF-8 BOM left by spreadsheet exports.
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		empty := true
		row := make(Row, len(header))
		for i, key := range header {
			if key == "" || i >= len(record) {
				continue
			}
			row[key] = record[i]
			if strings.TrimSpace(record[i]) != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// NormalizeBlogRow converts a CSV row into a BlogPost, applying the
// spreadsheet conventions: comma-separated tags, lenient booleans and
// integers, and a draft status default.
func NormalizeBlogRow(row Row) (*domain.BlogPost, error) {
	if err := requireFields(row, "title", "slug", "author", "notionPageId"); err != nil {
		return nil, err
	}

	post := &domain.BlogPost{
		ID:           uuid.New().String(),
		Slug:         strings.TrimSpace(row["slug"]),
		Title:        strings.TrimSpace(row["title"]),
		Author:       strings.TrimSpace(row["author"]),
		Category:     strings.TrimSpace(row["category"]),
		Tags:         splitTags(row["tags"]),
		IsPublic:     parseBool(row["isPublic"]),
		Status:       normalizeStatus(row["status"]),
		GoodCount:    parseIntSafe(row["goodCount"]),
		NotionPageID: strings.TrimSpace(row["notionPageId"]),
		PublishedAt:  parseDateSafe(row["publishedAt"]),
	}
	if v := strings.TrimSpace(row["description"]); v != "" {
		post.Description = &v
	}
	if v := strings.TrimSpace(row["headerImagePath"]); v != "" {
		post.HeaderImagePath = &v
	}
	return post, nil
}

// NormalizeProductRow converts a CSV row into a ProductPost.
func NormalizeProductRow(row Row) (*domain.ProductPost, error) {
	if err := requireFields(row, "title", "slug", "author", "notionPageId", "type"); err != nil {
		return nil, err
	}

	post := &domain.ProductPost{
		ID:           uuid.New().String(),
		Slug:         strings.TrimSpace(row["slug"]),
		Title:        strings.TrimSpace(row["title"]),
		Author:       strings.TrimSpace(row["author"]),
		Category:     strings.TrimSpace(row["category"]),
		Type:         strings.TrimSpace(row["type"]),
		Tags:         splitTags(row["tags"]),
		IsPublic:     parseBool(row["isPublic"]),
		Status:       normalizeStatus(row["status"]),
		GoodCount:    parseIntSafe(row["goodCount"]),
		NotionPageID: strings.TrimSpace(row["notionPageId"]),
		ActionType:   normalizeActionType(row["actionType"]),
		PublishedAt:  parseDateSafe(row["publishedAt"]),
	}
	if v := strings.TrimSpace(row["description"]); v != "" {
		post.Description = &v
	}
	if v := strings.TrimSpace(row["headerImagePath"]); v != "" {
		post.HeaderImagePath = &v
	}
	if v := strings.TrimSpace(row["contentLink"]); v != "" {
		post.ContentLink = &v
	}
	return post, nil
}

func requireFields(row Row, keys ...string) error {
	for _, k := range keys {
		if strings.TrimSpace(row[k]) == "" {
			return fmt.Errorf("required field %s is empty", k)
		}
	}
	return nil
}

func splitTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}

func parseIntSafe(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func parseDateSafe(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func normalizeStatus(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case domain.StatusPublished:
		return domain.StatusPublished
	case domain.StatusArchived:
		return domain.StatusArchived
	}
	return domain.StatusDraft
}

func normalizeActionType(raw string) string {
	if strings.ToLower(strings.TrimSpace(raw)) == domain.ActionDownload {
		return domain.ActionDownload
	}
	return domain.ActionTransition
}
