package models

type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

// MaxLineQuantity caps the units of one product in a cart or order,
// after lines for the same product are merged. The binding tag below
// must use the same value.
const MaxLineQuantity = 99

// LineRequest is a client-held cart line sent for pricing or checkout.
type LineRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0,max=99"`
}

type QuoteRequest struct {
	Items []LineRequest `json:"items" binding:"required,dive"`
}

type Quote struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	Subtotal   float64    `json:"subtotal"`
	Shipping   float64    `json:"shipping"`
	Total      float64    `json:"total"`
}
