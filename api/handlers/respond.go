package handlers

import (
	"errors"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"saree-shop/internal/services"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// jsonFieldName makes validation errors report JSON field names.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// bindJSON decodes the body into req and writes a 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondInvalid(c, err)
		return false
	}
	return true
}

func respondInvalid(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fieldPath(fe)] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
}

// fieldPath drops the top-level struct name from the namespace, so
// "CheckoutRequest.items[0].quantity" becomes "items[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// respondError maps a service error to its HTTP status. Errors outside the
// known taxonomy are logged and hidden behind fallback.
func respondError(c *gin.Context, op string, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrAddressRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": capitalize(err.Error())})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
	case errors.Is(err, services.ErrAddressNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": capitalize(err.Error())})
	case errors.Is(err, services.ErrOutOfStock):
		c.JSON(http.StatusConflict, gin.H{"error": capitalize(err.Error())})
	default:
		log.Printf("%s: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
