package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	Items           []OrderItem `json:"items"`
	ShippingAddress Address     `json:"shippingAddress"`
	Subtotal        float64     `json:"subtotal"`
	Shipping        float64     `json:"shipping"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// OrderItem is a frozen copy of a product line at checkout time.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
}

// CheckoutRequest is the body of POST /api/orders. Subtotal and Shipping
// are accepted for compatibility with older clients but never trusted.
type CheckoutRequest struct {
	Items     []LineRequest `json:"items" binding:"required,min=1,dive"`
	AddressID string        `json:"addressId"`
	Address   *AddressInput `json:"address"`
	Subtotal  float64       `json:"subtotal"`
	Shipping  float64       `json:"shipping"`
}
