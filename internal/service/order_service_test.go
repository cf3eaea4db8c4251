package service

import (
	"testing"

	"go-warehouse-ledger/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderComputesTotal(t *testing.T) {
	f := newFixture(t)

	second := model.Product{Name: "Green Tea", Unit: "box"}
	require.NoError(t, f.catalogRepo.CreateProduct(&second))

	order, err := f.orderService().CreateOrder(&CreateOrderRequest{
		PartnerID: f.partner.ID,
		DepotID:   f.depot.ID,
		Lines: []OrderLineRequest{
			{ProductID: f.product.ID, Quantity: 10, Price: decimal.NewFromInt(5)},
			{ProductID: second.ID, Quantity: 3, Price: decimal.NewFromInt(4)},
		},
	}, "tester")
	require.NoError(t, err)

	// 10*5 + 3*4
	assert.True(t, order.Total.Equal(decimal.NewFromInt(62)), "expected 62, got %s", order.Total)
	require.Len(t, order.Details, 2)
	assert.Equal(t, f.partner.Name, order.Partner.Name)
	assert.Equal(t, f.depot.Name, order.Depot.Name)
	assert.Equal(t, f.product.Unit, order.Details[0].Product.Unit)

	// An order never moves stock.
	assert.Equal(t, 0, f.inventory(t, f.product))
}

func TestCreateOrderRejectsNonPositiveQuantity(t *testing.T) {
	f := newFixture(t)

	_, err := f.orderService().CreateOrder(&CreateOrderRequest{
		PartnerID: f.partner.ID,
		DepotID:   f.depot.ID,
		Lines: []OrderLineRequest{
			{ProductID: f.product.ID, Quantity: 0, Price: decimal.NewFromInt(5)},
		},
	}, "tester")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCreateOrderRejectsNegativePrice(t *testing.T) {
	f := newFixture(t)

	_, err := f.orderService().CreateOrder(&CreateOrderRequest{
		PartnerID: f.partner.ID,
		DepotID:   f.depot.ID,
		Lines: []OrderLineRequest{
			{ProductID: f.product.ID, Quantity: 1, Price: decimal.NewFromInt(-1)},
		},
	}, "tester")
	require.ErrorIs(t, err, ErrNegativePrice)
}

func TestCreateOrderUnknownReferences(t *testing.T) {
	f := newFixture(t)
	svc := f.orderService()

	_, err := svc.CreateOrder(&CreateOrderRequest{
		PartnerID: uuid.New(),
		DepotID:   f.depot.ID,
		Lines:     []OrderLineRequest{{ProductID: f.product.ID, Quantity: 1}},
	}, "tester")
	require.ErrorIs(t, err, ErrPartnerNotFound)

	_, err = svc.CreateOrder(&CreateOrderRequest{
		PartnerID: f.partner.ID,
		DepotID:   f.depot.ID,
		Lines:     []OrderLineRequest{{ProductID: uuid.New(), Quantity: 1}},
	}, "tester")
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetOrderMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.orderService().GetOrder(uuid.New())
	require.ErrorIs(t, err, ErrOrderNotFound)
}
