package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmedabdellatiff010-commits/backend-nehad/internal/service"
)

// CatalogHandler serves the read-only product and category endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Nehad storefront API is running",
	})
}

// ListProducts returns the full catalog verbatim, in file order.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Products())
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.ProductByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Categories())
}
