package services

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAddressNotFound = errors.New("address not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrOutOfStock      = errors.New("product out of stock")
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 99")
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrAddressRequired = errors.New("address required")
)
