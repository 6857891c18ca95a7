package services

import "saree-shop/internal/models"

const (
	imageSilkRed   = "https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=800&h=1000&fit=crop"
	imageDrape     = "https://images.unsplash.com/photo-1583391733956-3750e0ff4e8b?w=800&h=1000&fit=crop"
	imageSilkGreen = "https://images.unsplash.com/photo-1594463750939-ebb28c3f7f75?w=800&h=1000&fit=crop"
)

func listPrice(v float64) *float64 { return &v }

func sampleProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "Royal Banarasi Silk Saree",
			Description:   "Exquisite Banarasi silk saree with intricate gold zari work. This masterpiece features traditional motifs and a rich pallu that adds elegance to any occasion. Perfect for weddings and festive celebrations.",
			Price:         15999,
			OriginalPrice: listPrice(19999),
			Images:        []string{imageSilkRed, imageDrape},
			Category:      "Silk",
			Fabric:        "Pure Banarasi Silk",
			Occasion:      "Wedding",
			Color:         "Red",
			InStock:       true,
			IsFeatured:    true,
		},
		{
			ID:            "2",
			Name:          "Kanjeevaram Silk Saree",
			Description:   "Authentic Kanjeevaram silk saree handwoven by master weavers. Features a stunning temple border and contrast pallu with traditional designs. A timeless addition to your wardrobe.",
			Price:         24999,
			OriginalPrice: listPrice(29999),
			Images:        []string{imageSilkGreen},
			Category:      "Silk",
			Fabric:        "Kanjeevaram Silk",
			Occasion:      "Wedding",
			Color:         "Gold",
			InStock:       true,
			IsNew:         true,
			IsFeatured:    true,
		},
		{
			ID:          "3",
			Name:        "Chanderi Cotton Saree",
			Description: "Light and comfortable Chanderi cotton saree with subtle zari detailing. Perfect for daily wear and office occasions. The fabric is breathable and drapes beautifully.",
			Price:       3999,
			Images:      []string{imageDrape},
			Category:    "Cotton",
			Fabric:      "Chanderi Cotton",
			Occasion:    "Office",
			Color:       "Blue",
			InStock:     true,
			IsNew:       true,
		},
		{
			ID:            "4",
			Name:          "Designer Georgette Saree",
			Description:   "Stunning designer georgette saree with contemporary prints and sequin work. Lightweight and easy to carry, perfect for parties and evening events.",
			Price:         7999,
			OriginalPrice: listPrice(9999),
			Images:        []string{imageSilkRed},
			Category:      "Designer",
			Fabric:        "Georgette",
			Occasion:      "Party",
			Color:         "Pink",
			InStock:       true,
			IsFeatured:    true,
		},
		{
			ID:          "5",
			Name:        "Tussar Silk Saree",
			Description: "Natural Tussar silk saree with hand-painted Madhubani art. Each piece is unique and tells a story of Indian heritage and craftsmanship.",
			Price:       12999,
			Images:      []string{imageSilkGreen},
			Category:    "Silk",
			Fabric:      "Tussar Silk",
			Occasion:    "Festive",
			Color:       "Green",
			InStock:     true,
			IsNew:       true,
			IsFeatured:  true,
		},
		{
			ID:          "6",
			Name:        "Linen Handloom Saree",
			Description: "Premium linen handloom saree with a beautiful texture. Ideal for formal occasions and summer events. Easy to maintain and supremely comfortable.",
			Price:       5499,
			Images:      []string{imageDrape},
			Category:    "Cotton",
			Fabric:      "Linen",
			Occasion:    "Casual",
			Color:       "White",
			InStock:     true,
		},
		{
			ID:            "7",
			Name:          "Patola Silk Saree",
			Description:   "Rare double ikat Patola silk saree from Gujarat. Features geometric patterns created using traditional tie-dye technique. A collector's piece.",
			Price:         45999,
			OriginalPrice: listPrice(52999),
			Images:        []string{imageSilkRed},
			Category:      "Silk",
			Fabric:        "Patola Silk",
			Occasion:      "Wedding",
			Color:         "Red",
			InStock:       true,
			IsFeatured:    true,
		},
		{
			ID:          "8",
			Name:        "Cotton Jamdani Saree",
			Description: "Bengali Jamdani cotton saree with floating floral motifs. Hand-woven using ancient techniques, this saree represents the finest of Bengal's textile heritage.",
			Price:       8999,
			Images:      []string{imageSilkGreen},
			Category:    "Cotton",
			Fabric:      "Cotton Jamdani",
			Occasion:    "Festive",
			Color:       "Black",
			InStock:     true,
			IsNew:       true,
		},
		{
			ID:            "9",
			Name:          "Chiffon Party Saree",
			Description:   "Elegant chiffon saree with crystal embellishments and contemporary design. The lightweight fabric ensures comfort while the sparkle adds glamour.",
			Price:         6499,
			OriginalPrice: listPrice(7999),
			Images:        []string{imageDrape},
			Category:      "Designer",
			Fabric:        "Chiffon",
			Occasion:      "Party",
			Color:         "Blue",
			InStock:       true,
		},
		{
			ID:          "10",
			Name:        "Mysore Crepe Silk Saree",
			Description: "Graceful Mysore crepe silk saree known for its natural sheen and smooth texture. Features a traditional gold border that adds richness to the drape.",
			Price:       9999,
			Images:      []string{imageSilkRed},
			Category:    "Silk",
			Fabric:      "Mysore Silk",
			Occasion:    "Festive",
			Color:       "Green",
			InStock:     true,
			IsNew:       true,
			IsFeatured:  true,
		},
		{
			ID:          "11",
			Name:        "Sambalpuri Ikat Saree",
			Description: "Odisha's famous Sambalpuri ikat saree with traditional bandha patterns. Each color blend is carefully tied and dyed to create stunning visual effects.",
			Price:       4999,
			Images:      []string{imageSilkGreen},
			Category:    "Cotton",
			Fabric:      "Cotton Ikat",
			Occasion:    "Casual",
			Color:       "Red",
			InStock:     true,
		},
		{
			ID:          "12",
			Name:        "Designer Leheriya Saree",
			Description: "Vibrant Rajasthani Leheriya saree with wave patterns in multiple colors. Perfect for adding a pop of color to festive celebrations.",
			Price:       3499,
			Images:      []string{imageDrape},
			Category:    "Designer",
			Fabric:      "Georgette",
			Occasion:    "Festive",
			Color:       "Pink",
			InStock:     true,
			IsNew:       true,
		},
	}
}
