package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saree-shop/api/middleware"
	"saree-shop/internal/models"
	"saree-shop/internal/services"
)

type AddressHandler struct {
	userService *services.UserService
}

func NewAddressHandler(userService *services.UserService) *AddressHandler {
	return &AddressHandler{userService: userService}
}

// GET /api/addresses
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	addresses, err := h.userService.ListAddresses(middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, "list addresses", err, "Failed to fetch addresses")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": addresses})
}

// POST /api/addresses
func (h *AddressHandler) AddAddress(c *gin.Context) {
	var req models.AddressInput
	if !bindJSON(c, &req) {
		return
	}

	address, err := h.userService.AddAddress(middleware.CurrentUserID(c), req)
	if err != nil {
		respondError(c, "add address", err, "Failed to add address")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": address})
}

// PATCH /api/addresses/:id
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	var req models.AddressInput
	if !bindJSON(c, &req) {
		return
	}

	address, err := h.userService.UpdateAddress(middleware.CurrentUserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, "update address", err, "Failed to update address")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": address})
}

// DELETE /api/addresses/:id
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	deleted, err := h.userService.DeleteAddress(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, "delete address", err, "Failed to delete address")
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}
