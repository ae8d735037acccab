package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ahmedabdellatiff010-commits/backend-nehad/internal/service"
)

// RegisterRoutes wires the storefront endpoints onto the /api group.
func RegisterRoutes(rg *gin.RouterGroup, catalog *service.CatalogService, orders *service.OrderService) {
	catalogHandler := NewCatalogHandler(catalog)
	orderHandler := NewOrderHandler(orders)

	rg.GET("/health", Health)
	rg.GET("/products", catalogHandler.ListProducts)
	rg.GET("/products/:id", catalogHandler.GetProduct)
	rg.GET("/categories", catalogHandler.ListCategories)
	rg.POST("/orders", orderHandler.CreateOrder)
	rg.GET("/statistics", orderHandler.GetStatistics)
}

// NotFound is the catch-all for unmatched routes. Unknown API paths get a
// message distinct from everything else so the dashboard's fetch calls see a
// JSON body either way.
func NotFound(c *gin.Context) {
	path := c.Request.URL.Path
	if path == "/api" || strings.HasPrefix(path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "API route not found"})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}
