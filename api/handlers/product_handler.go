package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"saree-shop/internal/models"
	"saree-shop/internal/services"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GET /api/products
// featured=true wins over new=true, which wins over category. The result
// is then refined by fabric, occasion, color, price range and q.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	var products []models.Product
	switch category := c.Query("category"); {
	case c.Query("featured") == "true":
		products = h.productService.GetFeatured()
	case c.Query("new") == "true":
		products = h.productService.GetNew()
	case category != "":
		products = h.productService.GetByCategory(category)
	default:
		products = h.productService.GetAll()
	}

	minPrice, _ := strconv.ParseFloat(c.Query("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("max_price"), 64)
	products = services.FilterProducts(products, models.ProductFilter{
		Fabrics:   queryList(c, "fabric"),
		Occasions: queryList(c, "occasion"),
		Colors:    queryList(c, "color"),
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		Query:     c.Query("q"),
	})

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if page < 1 {
		page = 1
	}
	if limit < 0 || limit > 100 {
		limit = 0
	}

	total := len(products)
	meta := gin.H{"total": total}
	if limit > 0 {
		totalPages := (total + limit - 1) / limit
		meta["page"] = page
		meta["limit"] = limit
		meta["total_pages"] = totalPages
		meta["has_next"] = page < totalPages
		meta["has_prev"] = page > 1
	}

	c.JSON(http.StatusOK, gin.H{
		"data": services.Paginate(products, page, limit),
		"meta": meta,
	})
}

// GET /api/products/:id
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	product, exists := h.productService.GetByID(c.Param("id"))
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": product,
	})
}

// Health check endpoint
func (h *ProductHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

// queryList collects repeated and comma-separated values of a query key.
func queryList(c *gin.Context, key string) []string {
	var values []string
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}
