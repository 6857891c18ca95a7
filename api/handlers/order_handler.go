package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"saree-shop/api/middleware"
	"saree-shop/internal/models"
	"saree-shop/internal/services"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.Checkout(middleware.CurrentUserID(c), req)
	if err != nil {
		respondError(c, "create order", err, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": order,
	})
}

// GET /api/orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.orderService.GetByUser(middleware.CurrentUserID(c)),
	})
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetByID(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, "get order", err, "Failed to fetch order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": order,
	})
}

// GET /debug/metrics
func (h *OrderHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"goroutines": runtime.NumGoroutine(),
		"orders":     h.orderService.GetStats(),
		"timestamp":  time.Now().Unix(),
	})
}
