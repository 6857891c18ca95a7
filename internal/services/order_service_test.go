package services

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saree-shop/internal/models"
)

type recordingEvents struct {
	published []models.Order
	err       error
}

func (e *recordingEvents) PublishOrderPlaced(order models.Order) error {
	if e.err != nil {
		return e.err
	}
	e.published = append(e.published, order)
	return nil
}

func (e *recordingEvents) Close() error { return nil }

type orderFixture struct {
	users  *UserService
	orders *OrderService
	events *recordingEvents
	clock  *fakeClock
	user   models.User
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	catalog := newCatalog(t)
	users := NewUserService()
	events := &recordingEvents{}
	clock := newFakeClock()
	orders := NewOrderService(users, NewCartService(catalog, testPricing), events).WithClock(clock.Now)

	return &orderFixture{
		users:  users,
		orders: orders,
		events: events,
		clock:  clock,
		user:   newTestUser(t, users, "asha@example.com"),
	}
}

func TestOrderService_CreateTotalIsSubtotalPlusShipping(t *testing.T) {
	f := newOrderFixture(t)

	tests := []struct {
		subtotal, shipping float64
	}{
		{0, 199},
		{2998, 199},
		{23997, 0},
		{0.1, 0.2},
		{45999, 0},
	}
	for _, tt := range tests {
		order := f.orders.Create(f.user.ID, nil, models.Address{}, tt.subtotal, tt.shipping)
		assert.Equal(t, tt.subtotal+tt.shipping, order.Total)
		assert.Equal(t, models.OrderStatusConfirmed, order.Status)
		assert.Equal(t, f.clock.now, order.CreatedAt)
		assert.NotEmpty(t, order.ID)
	}
}

func TestOrderService_GetByUserInInsertionOrder(t *testing.T) {
	f := newOrderFixture(t)
	first := f.orders.Create(f.user.ID, nil, models.Address{}, 100, 199)
	_ = f.orders.Create("someone-else", nil, models.Address{}, 100, 199)
	second := f.orders.Create(f.user.ID, nil, models.Address{}, 5000, 0)

	orders := f.orders.GetByUser(f.user.ID)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)

	assert.Empty(t, f.orders.GetByUser("nobody"))
}

func TestOrderService_GetByIDIsOwnerScoped(t *testing.T) {
	f := newOrderFixture(t)
	order := f.orders.Create(f.user.ID, nil, models.Address{}, 100, 199)

	got, err := f.orders.GetByID(f.user.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = f.orders.GetByID("intruder", order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_CheckoutPricesFromCatalog(t *testing.T) {
	f := newOrderFixture(t)
	home, err := f.users.AddAddress(f.user.ID, addressInput("Home", false))
	require.NoError(t, err)

	order, err := f.orders.Checkout(f.user.ID, models.CheckoutRequest{
		Items: []models.LineRequest{
			{ProductID: "1", Quantity: 1},
			{ProductID: "3", Quantity: 2},
		},
		AddressID: home.ID,
		Subtotal:  1,
		Shipping:  0,
	})
	require.NoError(t, err)

	assert.Equal(t, 23997.0, order.Subtotal)
	assert.Equal(t, 0.0, order.Shipping)
	assert.Equal(t, 23997.0, order.Total)
	assert.Equal(t, home, order.ShippingAddress)
	require.Len(t, order.Items, 2)
	assert.Equal(t, models.OrderItem{
		ProductID:   "1",
		ProductName: "Royal Banarasi Silk Saree",
		Price:       15999,
		Quantity:    1,
		Image:       imageSilkRed,
	}, order.Items[0])
	assert.Equal(t, 2, order.Items[1].Quantity)

	require.Len(t, f.events.published, 1)
	assert.Equal(t, order.ID, f.events.published[0].ID)
	assert.Equal(t, int64(1), f.orders.GetStats()["placed_orders"])
}

func TestOrderService_CheckoutSnapshotsAddress(t *testing.T) {
	f := newOrderFixture(t)
	home, _ := f.users.AddAddress(f.user.ID, addressInput("Home", false))

	order, err := f.orders.Checkout(f.user.ID, models.CheckoutRequest{
		Items:     []models.LineRequest{{ProductID: "12", Quantity: 1}},
		AddressID: home.ID,
	})
	require.NoError(t, err)

	_, err = f.users.UpdateAddress(f.user.ID, home.ID, addressInput("Moved Away", true))
	require.NoError(t, err)

	stored, err := f.orders.GetByID(f.user.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Home", stored.ShippingAddress.FullName)
}

func TestOrderService_CheckoutInlineAddress(t *testing.T) {
	f := newOrderFixture(t)
	inline := addressInput("Gift Recipient", true)

	order, err := f.orders.Checkout(f.user.ID, models.CheckoutRequest{
		Items:   []models.LineRequest{{ProductID: "6", Quantity: 1}},
		Address: &inline,
	})
	require.NoError(t, err)

	assert.Contains(t, order.ShippingAddress.ID, "temp-")
	assert.Equal(t, "Gift Recipient", order.ShippingAddress.FullName)
	assert.False(t, order.ShippingAddress.IsDefault)
	assert.Equal(t, 5499.0, order.Subtotal)
	assert.Equal(t, 0.0, order.Shipping)

	addresses, _ := f.users.ListAddresses(f.user.ID)
	assert.Empty(t, addresses, "inline address is not saved")
}

func TestOrderService_CheckoutMergesDuplicateLines(t *testing.T) {
	f := newOrderFixture(t)
	home, _ := f.users.AddAddress(f.user.ID, addressInput("Home", false))

	order, err := f.orders.Checkout(f.user.ID, models.CheckoutRequest{
		Items: []models.LineRequest{
			{ProductID: "3", Quantity: 1},
			{ProductID: "3", Quantity: 1},
		},
		AddressID: home.ID,
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 7998.0, order.Total)
}

func TestOrderService_CheckoutFailures(t *testing.T) {
	f := newOrderFixture(t)
	home, _ := f.users.AddAddress(f.user.ID, addressInput("Home", false))
	stranger := newTestUser(t, f.users, "stranger@example.com")
	foreign, _ := f.users.AddAddress(stranger.ID, addressInput("Elsewhere", false))

	lines := []models.LineRequest{{ProductID: "1", Quantity: 1}}
	tests := []struct {
		name   string
		userID string
		req    models.CheckoutRequest
		want   error
	}{
		{"no items", f.user.ID, models.CheckoutRequest{AddressID: home.ID}, ErrEmptyOrder},
		{"no address", f.user.ID, models.CheckoutRequest{Items: lines}, ErrAddressRequired},
		{"address of another user", f.user.ID, models.CheckoutRequest{Items: lines, AddressID: foreign.ID}, ErrAddressNotFound},
		{"unknown product", f.user.ID, models.CheckoutRequest{Items: []models.LineRequest{{ProductID: "404", Quantity: 1}}, AddressID: home.ID}, ErrProductNotFound},
		{"bad quantity", f.user.ID, models.CheckoutRequest{Items: []models.LineRequest{{ProductID: "1", Quantity: -2}}, AddressID: home.ID}, ErrInvalidQuantity},
		{"merged quantity overflows", f.user.ID, models.CheckoutRequest{Items: []models.LineRequest{
			{ProductID: "3", Quantity: math.MaxInt},
			{ProductID: "3", Quantity: 1},
		}, AddressID: home.ID}, ErrInvalidQuantity},
		{"unknown user", "ghost", models.CheckoutRequest{Items: lines, AddressID: home.ID}, ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.orders.Checkout(tt.userID, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Empty(t, f.orders.GetByUser(f.user.ID))
	assert.Empty(t, f.events.published)
	assert.Equal(t, int64(len(tests)), f.orders.GetStats()["rejected_orders"])
}

func TestOrderService_CheckoutSurvivesPublishFailure(t *testing.T) {
	f := newOrderFixture(t)
	f.events.err = errors.New("broker down")
	home, _ := f.users.AddAddress(f.user.ID, addressInput("Home", false))

	order, err := f.orders.Checkout(f.user.ID, models.CheckoutRequest{
		Items:     []models.LineRequest{{ProductID: "2", Quantity: 1}},
		AddressID: home.ID,
	})
	require.NoError(t, err)

	assert.Len(t, f.orders.GetByUser(f.user.ID), 1)
	assert.Equal(t, order.ID, f.orders.GetByUser(f.user.ID)[0].ID)
	assert.Equal(t, int64(1), f.orders.GetStats()["publish_failed"])
}
