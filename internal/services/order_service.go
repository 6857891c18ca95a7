package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"saree-shop/internal/models"
)

type OrderService struct {
	mu          sync.RWMutex
	orders      map[string]*models.Order // order_id -> order
	userOrders  map[string][]string      // user_id -> order_ids
	userService *UserService
	cartService *CartService
	events      OrderEvents
	now         func() time.Time

	// Statistics for monitoring
	stats struct {
		sync.RWMutex
		placedOrders   int64
		rejectedOrders int64
		publishFailed  int64
	}
}

func NewOrderService(userService *UserService, cartService *CartService, events OrderEvents) *OrderService {
	if events == nil {
		events = NopOrderEvents{}
	}
	return &OrderService{
		orders:      make(map[string]*models.Order),
		userOrders:  make(map[string][]string),
		userService: userService,
		cartService: cartService,
		events:      events,
		now:         time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

// Create stores an order built from already-priced items. The total is
// always subtotal + shipping and the order starts out confirmed, since
// payment is cash on delivery.
func (s *OrderService) Create(userID string, items []models.OrderItem, address models.Address, subtotal, shipping float64) models.Order {
	order := &models.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           append([]models.OrderItem(nil), items...),
		ShippingAddress: address,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Total:           subtotal + shipping,
		Status:          models.OrderStatusConfirmed,
		CreatedAt:       s.now().UTC(),
	}

	s.mu.Lock()
	s.orders[order.ID] = order
	s.userOrders[userID] = append(s.userOrders[userID], order.ID)
	s.mu.Unlock()

	return cloneOrder(order)
}

func (s *OrderService) GetByUser(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.userOrders[userID]
	orders := make([]models.Order, 0, len(ids))
	for _, id := range ids {
		orders = append(orders, cloneOrder(s.orders[id]))
	}
	return orders
}

// GetByID returns the order only when it belongs to userID.
func (s *OrderService) GetByID(userID, orderID string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, exists := s.orders[orderID]
	if !exists || order.UserID != userID {
		return models.Order{}, ErrOrderNotFound
	}
	return cloneOrder(order), nil
}

// Checkout prices the request against the catalog, resolves the shipping
// address and stores the order. Client-sent prices and totals are ignored.
func (s *OrderService) Checkout(userID string, req models.CheckoutRequest) (models.Order, error) {
	order, err := s.checkout(userID, req)
	if err != nil {
		s.stats.Lock()
		s.stats.rejectedOrders++
		s.stats.Unlock()
		return models.Order{}, err
	}

	s.stats.Lock()
	s.stats.placedOrders++
	s.stats.Unlock()

	if err := s.events.PublishOrderPlaced(order); err != nil {
		s.stats.Lock()
		s.stats.publishFailed++
		s.stats.Unlock()
		log.Printf("publish order placed: %v", err)
	}
	return order, nil
}

func (s *OrderService) checkout(userID string, req models.CheckoutRequest) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	user, exists := s.userService.GetByID(userID)
	if !exists {
		return models.Order{}, fmt.Errorf("checkout: %w", ErrUserNotFound)
	}

	address, err := shippingAddress(user, req)
	if err != nil {
		return models.Order{}, err
	}

	cart, err := s.cartService.BuildCart(req.Items)
	if err != nil {
		return models.Order{}, err
	}
	quote := s.cartService.Pricing().Quote(cart)

	items := make([]models.OrderItem, 0, len(quote.Items))
	for _, line := range quote.Items {
		items = append(items, models.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.Product.Name,
			Price:       line.Product.Price,
			Quantity:    line.Quantity,
			Image:       line.Product.PrimaryImage(),
		})
	}

	return s.Create(userID, items, address, quote.Subtotal, quote.Shipping), nil
}

// shippingAddress picks a saved address by id, or copies an inline one.
func shippingAddress(user models.User, req models.CheckoutRequest) (models.Address, error) {
	switch {
	case req.AddressID != "":
		for _, a := range user.Addresses {
			if a.ID == req.AddressID {
				return a, nil
			}
		}
		return models.Address{}, ErrAddressNotFound
	case req.Address != nil:
		address := req.Address.ToAddress("temp-" + uuid.NewString())
		address.IsDefault = false
		return address, nil
	default:
		return models.Address{}, ErrAddressRequired
	}
}

// Statistics
func (s *OrderService) GetStats() map[string]int64 {
	s.stats.RLock()
	defer s.stats.RUnlock()

	return map[string]int64{
		"placed_orders":   s.stats.placedOrders,
		"rejected_orders": s.stats.rejectedOrders,
		"publish_failed":  s.stats.publishFailed,
	}
}

func cloneOrder(o *models.Order) models.Order {
	order := *o
	order.Items = append([]models.OrderItem(nil), o.Items...)
	return order
}
