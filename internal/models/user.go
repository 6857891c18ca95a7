package models

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone,omitempty"`
	Addresses []Address `json:"addresses"`
}

type Address struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	IsDefault    bool   `json:"isDefault"`
}

// NewUser carries registration data into the user store. Password must
// already be hashed.
type NewUser struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required,min=1"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AddressInput struct {
	FullName     string `json:"fullName" binding:"required"`
	Phone        string `json:"phone" binding:"required,min=10"`
	AddressLine1 string `json:"addressLine1" binding:"required"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	Pincode      string `json:"pincode" binding:"required,len=6"`
	IsDefault    bool   `json:"isDefault"`
}

// ToAddress builds an address record with the given id from the input.
func (in AddressInput) ToAddress(id string) Address {
	return Address{
		ID:           id,
		FullName:     in.FullName,
		Phone:        in.Phone,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		City:         in.City,
		State:        in.State,
		Pincode:      in.Pincode,
		IsDefault:    in.IsDefault,
	}
}
