package services

import (
	"strings"
	"sync"

	"saree-shop/internal/models"
)

// ProductService is the read-only catalog. It is seeded once at startup
// and keeps products in insertion order.
type ProductService struct {
	mu       sync.RWMutex
	products map[string]*models.Product
	order    []string
}

func NewProductService() *ProductService {
	return &ProductService{
		products: make(map[string]*models.Product),
	}
}

func (s *ProductService) InitSampleData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range sampleProducts() {
		if _, exists := s.products[p.ID]; !exists {
			s.order = append(s.order, p.ID)
		}
		s.products[p.ID] = &p
	}
}

func (s *ProductService) GetAll() []models.Product {
	return s.collect(func(models.Product) bool { return true })
}

func (s *ProductService) GetByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, exists := s.products[id]
	if !exists {
		return models.Product{}, false
	}
	return cloneProduct(*product), true
}

func (s *ProductService) GetFeatured() []models.Product {
	return s.collect(func(p models.Product) bool { return p.IsFeatured })
}

func (s *ProductService) GetNew() []models.Product {
	return s.collect(func(p models.Product) bool { return p.IsNew })
}

func (s *ProductService) GetByCategory(category string) []models.Product {
	return s.collect(func(p models.Product) bool {
		return strings.EqualFold(p.Category, category)
	})
}

func (s *ProductService) collect(match func(models.Product) bool) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]models.Product, 0, len(s.order))
	for _, id := range s.order {
		product := s.products[id]
		if match(*product) {
			results = append(results, cloneProduct(*product))
		}
	}
	return results
}

// FilterProducts refines a product list. Fabric, occasion and color match
// when any of the requested values is a case-insensitive substring of the
// product's value.
func FilterProducts(products []models.Product, filter models.ProductFilter) []models.Product {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	results := make([]models.Product, 0, len(products))
	for _, product := range products {
		matchesQuery := query == "" ||
			contains(product.Name, query) ||
			contains(product.Description, query)
		matchesPrice := (filter.MinPrice == 0 || product.Price >= filter.MinPrice) &&
			(filter.MaxPrice == 0 || product.Price <= filter.MaxPrice)

		if matchesQuery && matchesPrice &&
			matchesAny(product.Fabric, filter.Fabrics) &&
			matchesAny(product.Occasion, filter.Occasions) &&
			matchesAny(product.Color, filter.Colors) {
			results = append(results, product)
		}
	}
	return results
}

// Paginate returns one page of products. A non-positive limit returns the
// whole list.
func Paginate(products []models.Product, page, limit int) []models.Product {
	if limit <= 0 {
		return products
	}
	if page < 1 {
		page = 1
	}

	total := len(products)
	if page-1 > total/limit {
		return []models.Product{}
	}
	start := (page - 1) * limit
	if start >= total {
		return []models.Product{}
	}

	end := total
	if limit < total-start {
		end = start + limit
	}
	return products[start:end]
}

func matchesAny(value string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if contains(value, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// contains reports whether lowerSubstr occurs in s, ignoring case of s.
func contains(s, lowerSubstr string) bool {
	return strings.Contains(strings.ToLower(s), lowerSubstr)
}

func cloneProduct(p models.Product) models.Product {
	p.Images = append([]string(nil), p.Images...)
	if p.OriginalPrice != nil {
		price := *p.OriginalPrice
		p.OriginalPrice = &price
	}
	return p
}
