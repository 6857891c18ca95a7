package models

type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Fabric        string   `json:"fabric"`
	Occasion      string   `json:"occasion"`
	Color         string   `json:"color"`
	InStock       bool     `json:"inStock"`
	IsNew         bool     `json:"isNew,omitempty"`
	IsFeatured    bool     `json:"isFeatured,omitempty"`
}

// PrimaryImage is the image shown in listings and snapshotted into orders.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// ProductFilter narrows a product list. Empty fields match everything.
type ProductFilter struct {
	Fabrics   []string
	Occasions []string
	Colors    []string
	MinPrice  float64
	MaxPrice  float64
	Query     string
}
