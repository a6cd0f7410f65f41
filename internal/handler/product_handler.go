package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TKMhub/simpro-app/internal/logger"
	"github.com/TKMhub/simpro-app/internal/middleware"
	"github.com/TKMhub/simpro-app/internal/service"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	content service.ContentProvider
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(content service.ContentProvider) *ProductHandler {
	return &ProductHandler{content: content}
}

// List handles GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.content.ListProduct(c.Request.Context(), query.ListParams())
	if err != nil {
		logger.Error("product list failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list product posts"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Detail handles GET /api/v1/products/:slug
func (h *ProductHandler) Detail(c *gin.Context) {
	slug := c.Param("slug")

	detail, err := h.content.ProductDetail(c.Request.Context(), slug)
	if err != nil {
		logger.Error("product detail failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("slug", slug),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product post"})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product post not found"})
		return
	}

	c.JSON(http.StatusOK, detail)
}
