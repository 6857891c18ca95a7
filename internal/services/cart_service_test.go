package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saree-shop/internal/models"
)

var testPricing = Pricing{FreeShippingThreshold: 2999, ShippingFee: 199}

func TestCart_AddMergesSameProduct(t *testing.T) {
	catalog := newCatalog(t)
	banarasi, _ := catalog.GetByID("1")

	cart := NewCart()
	first := cart.Add(banarasi, 1)
	second := cart.Add(banarasi, 2)

	assert.Equal(t, first.ID, second.ID)
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 3, cart.Items()[0].Quantity)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCart_UpdateQuantityAndRemove(t *testing.T) {
	catalog := newCatalog(t)
	banarasi, _ := catalog.GetByID("1")
	chanderi, _ := catalog.GetByID("3")

	cart := NewCart()
	a := cart.Add(banarasi, 1)
	b := cart.Add(chanderi, 1)

	cart.UpdateQuantity(b.ID, 4)
	assert.Equal(t, 5, cart.TotalItems())

	cart.UpdateQuantity(a.ID, 0)
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, chanderi.ID, cart.Items()[0].ProductID)

	cart.Remove(b.ID)
	assert.Empty(t, cart.Items())

	cart.Add(banarasi, 1)
	cart.Clear()
	assert.Zero(t, cart.TotalItems())
	assert.Zero(t, cart.Subtotal())
}

func TestPricing_QuoteFreeShippingAboveThreshold(t *testing.T) {
	catalog := newCatalog(t)
	banarasi, _ := catalog.GetByID("1")
	chanderi, _ := catalog.GetByID("3")

	cart := NewCart()
	cart.Add(banarasi, 1)
	cart.Add(chanderi, 2)

	quote := testPricing.Quote(cart)
	assert.Equal(t, 3, quote.TotalItems)
	assert.Equal(t, 23997.0, quote.Subtotal)
	assert.Equal(t, 0.0, quote.Shipping)
	assert.Equal(t, 23997.0, quote.Total)
}

func TestPricing_Shipping(t *testing.T) {
	tests := []struct {
		subtotal float64
		want     float64
	}{
		{0, 199},
		{2998, 199},
		{2999, 0},
		{45999, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, testPricing.Shipping(tt.subtotal), "subtotal %v", tt.subtotal)
	}
}

func TestCartService_Quote(t *testing.T) {
	s := NewCartService(newCatalog(t), testPricing)

	quote, err := s.Quote([]models.LineRequest{
		{ProductID: "1", Quantity: 1},
		{ProductID: "3", Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 23997.0, quote.Total)

	quote, err = s.Quote([]models.LineRequest{{ProductID: "12", Quantity: 1}})
	require.NoError(t, err)
	assert.Equal(t, 3499.0, quote.Subtotal)
	assert.Equal(t, 0.0, quote.Shipping)

	quote, err = s.Quote(nil)
	require.NoError(t, err)
	assert.Equal(t, 199.0, quote.Total)
}

func TestCartService_BuildCartRejectsBadLines(t *testing.T) {
	catalog := newCatalog(t)
	catalog.products["13"] = &models.Product{ID: "13", Name: "Sold Out Saree", Price: 999, InStock: false}
	s := NewCartService(catalog, testPricing)

	tests := []struct {
		name  string
		lines []models.LineRequest
		want  error
	}{
		{"unknown product", []models.LineRequest{{ProductID: "99", Quantity: 1}}, ErrProductNotFound},
		{"zero quantity", []models.LineRequest{{ProductID: "1", Quantity: 0}}, ErrInvalidQuantity},
		{"out of stock", []models.LineRequest{{ProductID: "13", Quantity: 1}}, ErrOutOfStock},
		{"above line cap", []models.LineRequest{{ProductID: "1", Quantity: models.MaxLineQuantity + 1}}, ErrInvalidQuantity},
		{"merged above line cap", []models.LineRequest{
			{ProductID: "3", Quantity: 60},
			{ProductID: "3", Quantity: 40},
		}, ErrInvalidQuantity},
		{"merged sum would overflow", []models.LineRequest{
			{ProductID: "3", Quantity: math.MaxInt},
			{ProductID: "3", Quantity: 1},
		}, ErrInvalidQuantity},
		{"second line overflows first", []models.LineRequest{
			{ProductID: "3", Quantity: 1},
			{ProductID: "3", Quantity: math.MaxInt},
		}, ErrInvalidQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.BuildCart(tt.lines)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCartService_BuildCartMergesUpToLineCap(t *testing.T) {
	s := NewCartService(newCatalog(t), testPricing)

	cart, err := s.BuildCart([]models.LineRequest{
		{ProductID: "3", Quantity: models.MaxLineQuantity - 1},
		{ProductID: "1", Quantity: models.MaxLineQuantity},
		{ProductID: "3", Quantity: 1},
	})
	require.NoError(t, err)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, models.MaxLineQuantity, items[0].Quantity)
	assert.Equal(t, models.MaxLineQuantity, items[1].Quantity)
	assert.Positive(t, cart.Subtotal())
}
