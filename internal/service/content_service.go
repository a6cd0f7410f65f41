package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/TKMhub/simpro-app/internal/domain"
	"github.com/TKMhub/simpro-app/internal/logger"
	"github.com/TKMhub/simpro-app/internal/metrics"
	"github.com/TKMhub/simpro-app/internal/notion"
	"github.com/TKMhub/simpro-app/internal/repository"
)

// PageResolver resolves the external document ID for a content record.
type PageResolver interface {
	Resolve(ctx context.Context, hint string, titleCandidates []string) (string, bool, error)
}

// BlockFetcher retrieves the flattened block tree of a page.
type BlockFetcher interface {
	FetchBlocks(ctx context.Context, pageID string) ([]notion.RawBlock, error)
}

// ImageResolver produces a displayable URL for a stored image reference.
type ImageResolver interface {
	Resolve(ctx context.Context, imgPath, slug string) string
}

// ContentService assembles list and detail responses for blog and
// product content. All of its operations are read-only.
type ContentService struct {
	blogRepo    repository.BlogRepository
	productRepo repository.ProductRepository

	blogResolver    PageResolver
	productResolver PageResolver
	fetcher         BlockFetcher

	blogImages    ImageResolver
	productImages ImageResolver
}

// NewContentService creates a ContentService.
func NewContentService(
	blogRepo repository.BlogRepository,
	productRepo repository.ProductRepository,
	blogResolver PageResolver,
	productResolver PageResolver,
	fetcher BlockFetcher,
	blogImages ImageResolver,
	productImages ImageResolver,
) *ContentService {
	return &ContentService{
		blogRepo:        blogRepo,
		productRepo:     productRepo,
		blogResolver:    blogResolver,
		productResolver: productResolver,
		fetcher:         fetcher,
		blogImages:      blogImages,
		productImages:   productImages,
	}
}

// ListBlog returns one page of public blog headers matching the filter.
// The count and page queries run concurrently; they have no ordering
// dependency.
func (s *ContentService) ListBlog(ctx context.Context, params domain.ListParams) (*domain.BlogListResult, error) {
	p := params.Normalized(domain.DefaultBlogPageSize)

	var (
		total int
		rows  []domain.BlogPost
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.blogRepo.Count(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.blogRepo.List(gctx, p)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}

	items := make([]domain.BlogHeader, 0, len(rows))
	for _, post := range rows {
		items = append(items, s.blogHeader(ctx, post))
	}
	return &domain.BlogListResult{Items: items, Total: total, Page: p.Page, PageSize: p.PageSize}, nil
}

// BlogDetail returns the header and normalized body of the public blog
// post with the given slug, or nil when none exists. A failing body
// fetch never fails the response: the document degrades to its
// unavailable marker and the header still renders.
func (s *ContentService) BlogDetail(ctx context.Context, slug string) (*domain.BlogDetail, error) {
	post, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("find blog post: %w", err)
	}
	if post == nil {
		return nil, nil
	}

	return &domain.BlogDetail{
		Header: s.blogHeader(ctx, *post),
		Notion: s.loadDocument(ctx, "blog", s.blogResolver, post.NotionPageID, post.Title),
	}, nil
}

// BlogFacets aggregates the distinct categories of public published
// posts and the tag set used within each category, both sorted.
func (s *ContentService) BlogFacets(ctx context.Context) (*domain.Facets, error) {
	rows, err := s.blogRepo.FacetRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("load facet rows: %w", err)
	}

	tagSets := make(map[string]map[string]struct{})
	for _, row := range rows {
		if row.Category == "" {
			continue
		}
		set, ok := tagSets[row.Category]
		if !ok {
			set = make(map[string]struct{})
			tagSets[row.Category] = set
		}
		for _, t := range row.Tags {
			set[t] = struct{}{}
		}
	}

	categories := make([]string, 0, len(tagSets))
	for c := range tagSets {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	categoryTags := make(map[string][]string, len(categories))
	for _, c := range categories {
		tags := make([]string, 0, len(tagSets[c]))
		for t := range tagSets[c] {
			tags = append(tags, t)
		}
		sort.Strings(tags)
		categoryTags[c] = tags
	}

	return &domain.Facets{Categories: categories, CategoryTags: categoryTags}, nil
}

// ListProduct returns one page of public product headers matching the
// filter.
func (s *ContentService) ListProduct(ctx context.Context, params domain.ListParams) (*domain.ProductListResult, error) {
	p := params.Normalized(domain.DefaultProductPageSize)

	var (
		total int
		rows  []domain.ProductPost
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.productRepo.Count(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.productRepo.List(gctx, p)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list product posts: %w", err)
	}

	items := make([]domain.ProductHeader, 0, len(rows))
	for _, post := range rows {
		items = append(items, s.productHeader(ctx, post))
	}
	return &domain.ProductListResult{Items: items, Total: total, Page: p.Page, PageSize: p.PageSize}, nil
}

// ProductDetail returns the header and normalized body of the public
// product post with the given slug, or nil when none exists.
func (s *ContentService) ProductDetail(ctx context.Context, slug string) (*domain.ProductDetail, error) {
	post, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("find product post: %w", err)
	}
	if post == nil {
		return nil, nil
	}

	return &domain.ProductDetail{
		Header: s.productHeader(ctx, *post),
		Notion: s.loadDocument(ctx, "product", s.productResolver, post.NotionPageID, post.Title),
	}, nil
}

func (s *ContentService) blogHeader(ctx context.Context, post domain.BlogPost) domain.BlogHeader {
	return domain.BlogHeader{
		BlogPost:       post,
		HeaderImageURL: s.blogImages.Resolve(ctx, deref(post.HeaderImagePath), post.Slug),
	}
}

func (s *ContentService) productHeader(ctx context.Context, post domain.ProductPost) domain.ProductHeader {
	return domain.ProductHeader{
		ProductPost:    post,
		HeaderImageURL: s.productImages.Resolve(ctx, deref(post.HeaderImagePath), post.Slug),
	}
}

// loadDocument runs the resolve, fetch and normalize chain. Every
// failure along the chain degrades to the unavailable marker instead of
// propagating.
func (s *ContentService) loadDocument(ctx context.Context, kind string, resolver PageResolver, hint, title string) domain.Document {
	start := time.Now()

	pageID, found, err := resolver.Resolve(ctx, hint, []string{title})
	if err != nil {
		logger.WarnContext(ctx, "document id resolution failed",
			slog.String("kind", kind),
			slog.String("error", err.Error()))
		metrics.DocumentLoadsTotal.WithLabelValues(kind, "error").Inc()
		return domain.UnavailableDocument()
	}
	if !found {
		metrics.DocumentLoadsTotal.WithLabelValues(kind, "unresolved").Inc()
		return domain.UnavailableDocument()
	}

	blocks, err := s.fetcher.FetchBlocks(ctx, pageID)
	if err != nil {
		logger.WarnContext(ctx, "document fetch failed",
			slog.String("kind", kind),
			slog.String("page_id", pageID),
			slog.String("error", err.Error()))
		metrics.DocumentLoadsTotal.WithLabelValues(kind, "error").Inc()
		return domain.UnavailableDocument()
	}

	metrics.DocumentLoadsTotal.WithLabelValues(kind, "ok").Inc()
	metrics.DocumentLoadDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	return notion.NormalizeDocument(blocks)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
