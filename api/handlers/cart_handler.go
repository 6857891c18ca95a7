package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saree-shop/internal/models"
	"saree-shop/internal/services"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// POST /api/cart/quote
// Price a browser-held cart against the live catalog.
func (h *CartHandler) Quote(c *gin.Context) {
	var req models.QuoteRequest
	if !bindJSON(c, &req) {
		return
	}

	quote, err := h.cartService.Quote(req.Items)
	if err != nil {
		respondError(c, "quote cart", err, "Failed to price cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": quote,
	})
}
