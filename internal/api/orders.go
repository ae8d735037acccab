package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmedabdellatiff010-commits/backend-nehad/internal/service"
	"github.com/ahmedabdellatiff010-commits/backend-nehad/internal/store"
)

// OrderHandler serves order submission and the dashboard statistics.
type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrder accepts an arbitrary order payload; the only shape check is a
// non-empty items list. A malformed body and a missing items list produce
// the same client error.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload store.Record
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload"})
		return
	}

	order, err := h.orders.Create(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload"})
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, h.orders.Statistics())
}
