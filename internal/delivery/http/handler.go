package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shoplens/backend/internal/domain"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog     domain.Catalog
	recommender domain.Recommender
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog domain.Catalog, recommender domain.Recommender) *Handler {
	return &Handler{
		catalog:     catalog,
		recommender: recommender,
	}
}

// recommendRequest is the body of POST /api/recommend
type recommendRequest struct {
	Query string `json:"query" binding:"required,min=3"`
}

// Recommend handles natural-language recommendation queries
func (h *Handler) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required and must be at least 3 characters"})
		return
	}

	// The pipeline absorbs every external failure, so this never errors.
	response := h.recommender.GetRecommendations(c.Request.Context(), req.Query)
	c.JSON(http.StatusOK, response)
}

// ListProducts returns products with optional category/brand filtering
func (h *Handler) ListProducts(c *gin.Context) {
	category := c.Query("category")
	var brands []string
	if brand := c.Query("brand"); brand != "" {
		brands = []string{brand}
	}

	c.JSON(http.StatusOK, h.catalog.Filter(category, brands))
}

// GetProduct returns a single product by id
func (h *Handler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// Search performs a free-text catalog search
func (h *Handler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	results := h.catalog.Search(q)
	c.JSON(http.StatusOK, gin.H{
		"query":    q,
		"count":    len(results),
		"products": results,
	})
}

// ListCategories returns the categories present in the catalog with counts
func (h *Handler) ListCategories(c *gin.Context) {
	categories := h.catalog.Categories()
	entries := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		entries = append(entries, gin.H{
			"id":    cat,
			"name":  displayName(cat),
			"count": len(h.catalog.Filter(cat, nil)),
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": entries})
}

// ListBrands returns brands, optionally scoped to a category
func (h *Handler) ListBrands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"brands": h.catalog.Brands(c.Query("category"))})
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"service":         "shoplens-backend",
		"version":         "1.0.0",
		"products_loaded": len(h.catalog.All()),
		"categories":      h.catalog.Categories(),
	})
}

// displayName turns a category id like "washing_machine" into "Washing Machine".
func displayName(category string) string {
	words := strings.Split(category, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
