package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"saree-shop/internal/models"
)

// Cart holds the lines of a shopper's cart. It mirrors the cart the
// storefront keeps in the browser and is used server-side to price and
// merge lines before a quote or checkout. A Cart is not safe for
// concurrent use.
type Cart struct {
	items []models.CartItem
}

func NewCart() *Cart {
	return &Cart{items: []models.CartItem{}}
}

// Add puts quantity units of product in the cart, merging with an existing
// line for the same product.
func (c *Cart) Add(product models.Product, quantity int) models.CartItem {
	for i, item := range c.items {
		if item.ProductID == product.ID {
			c.items[i].Quantity += quantity
			return c.items[i]
		}
	}

	item := models.CartItem{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Quantity:  quantity,
		Product:   product,
	}
	c.items = append(c.items, item)
	return item
}

// UpdateQuantity sets a line's quantity. Zero or less removes the line.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.Remove(itemID)
		return
	}
	for i, item := range c.items {
		if item.ID == itemID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Remove(itemID string) {
	for i, item := range c.items {
		if item.ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = []models.CartItem{}
}

func (c *Cart) Items() []models.CartItem {
	return append([]models.CartItem(nil), c.items...)
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) Subtotal() float64 {
	return toFloat(c.subtotal())
}

func (c *Cart) subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.items {
		line := decimal.NewFromFloat(item.Product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}
	return sum
}

// Pricing holds the shipping rule: orders at or above the threshold ship
// free, everything else pays the flat fee.
type Pricing struct {
	FreeShippingThreshold float64
	ShippingFee           float64
}

func (p Pricing) Shipping(subtotal float64) float64 {
	if subtotal >= p.FreeShippingThreshold {
		return 0
	}
	return p.ShippingFee
}

func (p Pricing) Quote(cart *Cart) models.Quote {
	subtotal := cart.subtotal()
	shipping := decimal.NewFromFloat(p.Shipping(toFloat(subtotal)))

	return models.Quote{
		Items:      cart.Items(),
		TotalItems: cart.TotalItems(),
		Subtotal:   toFloat(subtotal),
		Shipping:   toFloat(shipping),
		Total:      toFloat(subtotal.Add(shipping)),
	}
}

// CartService prices client-held carts against the live catalog.
type CartService struct {
	productService *ProductService
	pricing        Pricing
}

func NewCartService(productService *ProductService, pricing Pricing) *CartService {
	return &CartService{
		productService: productService,
		pricing:        pricing,
	}
}

// BuildCart resolves each line against the catalog. Lines for the same
// product are merged. Unknown or sold-out products are rejected, as is a
// quantity that is non-positive or, once merged, above MaxLineQuantity.
func (s *CartService) BuildCart(lines []models.LineRequest) (*Cart, error) {
	cart := NewCart()
	merged := make(map[string]int, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 || line.Quantity > models.MaxLineQuantity-merged[line.ProductID] {
			return nil, ErrInvalidQuantity
		}
		product, exists := s.productService.GetByID(line.ProductID)
		if !exists {
			return nil, ErrProductNotFound
		}
		if !product.InStock {
			return nil, ErrOutOfStock
		}
		merged[line.ProductID] += line.Quantity
		cart.Add(product, line.Quantity)
	}
	return cart, nil
}

func (s *CartService) Quote(lines []models.LineRequest) (models.Quote, error) {
	cart, err := s.BuildCart(lines)
	if err != nil {
		return models.Quote{}, err
	}
	return s.pricing.Quote(cart), nil
}

func (s *CartService) Pricing() Pricing {
	return s.pricing
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
