package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"saree-shop/api/middleware"
	"saree-shop/internal/models"
	"saree-shop/internal/services"
)

type AuthHandler struct {
	userService    *services.UserService
	sessionService *services.SessionService
	cookie         SessionCookie
	bcryptCost     int
}

func NewAuthHandler(userService *services.UserService, sessionService *services.SessionService, cookie SessionCookie, bcryptCost int) *AuthHandler {
	return &AuthHandler{
		userService:    userService,
		sessionService: sessionService,
		cookie:         cookie,
		bcryptCost:     bcryptCost,
	}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, exists := h.userService.GetByEmail(req.Email); exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	hash, err := services.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		respondError(c, "register", err, "Registration failed")
		return
	}

	user, err := h.userService.Create(models.NewUser{
		Email:    req.Email,
		Password: hash,
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		respondError(c, "register", err, "Registration failed")
		return
	}

	if !h.startSession(c, user.ID, "register") {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": user})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, exists := h.userService.GetByEmail(req.Email)
	if !exists || !services.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if !h.startSession(c, user.ID, "login") {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookie.Name); err == nil && token != "" {
		h.sessionService.Destroy(token)
	}
	h.cookie.clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.Identify(c, h.sessionService, h.cookie.Name)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	user, exists := h.userService.GetByID(userID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (h *AuthHandler) startSession(c *gin.Context, userID, op string) bool {
	session, err := h.sessionService.Create(userID)
	if err != nil {
		log.Printf("%s: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start session"})
		return false
	}
	h.cookie.write(c, session.Token, h.sessionService.TTL())
	return true
}
