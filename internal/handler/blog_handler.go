package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TKMhub/simpro-app/internal/domain"
	"github.com/TKMhub/simpro-app/internal/logger"
	"github.com/TKMhub/simpro-app/internal/middleware"
	"github.com/TKMhub/simpro-app/internal/service"
)

// BlogHandler handles blog-related HTTP requests.
type BlogHandler struct {
	content service.ContentProvider
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(content service.ContentProvider) *BlogHandler {
	return &BlogHandler{content: content}
}

// ListQuery represents the query parameters accepted by list endpoints.
type ListQuery struct {
	Q        string   `form:"q"`
	Tags     []string `form:"tags"`
	Category string   `form:"category"`
	Type     string   `form:"type" binding:"omitempty,oneof=Tool Template Service"`
	Status   string   `form:"status" binding:"omitempty,oneof=draft published archived all"`
	Sort     string   `form:"sort" binding:"omitempty,oneof=created updated"`
	Order    string   `form:"order" binding:"omitempty,oneof=asc desc"`
	Page     int      `form:"page" binding:"omitempty,min=1"`
	PageSize int      `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

// ListParams converts the bound query into domain list parameters.
func (q ListQuery) ListParams() domain.ListParams {
	return domain.ListParams{
		Query:    q.Q,
		Tags:     q.Tags,
		Category: q.Category,
		Type:     q.Type,
		Status:   q.Status,
		Sort:     q.Sort,
		Order:    q.Order,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
}

// List handles GET /api/v1/blog
func (h *BlogHandler) List(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.content.ListBlog(c.Request.Context(), query.ListParams())
	if err != nil {
		logger.Error("blog list failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list blog posts"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Detail handles GET /api/v1/blog/:slug
func (h *BlogHandler) Detail(c *gin.Context) {
	slug := c.Param("slug")

	detail, err := h.content.BlogDetail(c.Request.Context(), slug)
	if err != nil {
		logger.Error("blog detail failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("slug", slug),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load blog post"})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Facets handles GET /api/v1/blog/facets
func (h *BlogHandler) Facets(c *gin.Context) {
	facets, err := h.content.BlogFacets(c.Request.Context())
	if err != nil {
		logger.Error("blog facets failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load facets"})
		return
	}

	c.JSON(http.StatusOK, facets)
}
