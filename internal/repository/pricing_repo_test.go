package repository

import (
	"testing"
	"time"

	"go-warehouse-ledger/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentPricelistIsNewest(t *testing.T) {
	db := newTestDB(t)
	repo := NewPricingRepo(db)

	old := model.Pricelist{Name: "2024"}
	old.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.CreatePricelist(&old))

	current := model.Pricelist{Name: "2025"}
	require.NoError(t, repo.CreatePricelist(&current))

	got, err := repo.CurrentPricelist()
	require.NoError(t, err)
	assert.Equal(t, current.ID, got.ID)
}

func TestCurrentPricelistEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewPricingRepo(db)

	_, err := repo.CurrentPricelist()
	require.ErrorIs(t, err, ErrNoPricelist)
}

func TestSetPriceUpserts(t *testing.T) {
	db := newTestDB(t)
	repo := NewPricingRepo(db)
	productID, pricelistID := uuid.New(), uuid.New()

	first := &model.ProductPrice{ProductID: productID, PricelistID: pricelistID, Price: decimal.NewFromInt(5)}
	require.NoError(t, repo.SetPrice(first))

	second := &model.ProductPrice{ProductID: productID, PricelistID: pricelistID, Price: decimal.NewFromInt(8)}
	require.NoError(t, repo.SetPrice(second))

	var count int64
	require.NoError(t, db.Model(&model.ProductPrice{}).
		Where("product_id = ? AND pricelist_id = ?", productID, pricelistID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)

	price, priced, err := repo.PriceOf(productID, pricelistID)
	require.NoError(t, err)
	assert.True(t, priced)
	assert.True(t, price.Equal(decimal.NewFromInt(8)), "expected 8, got %s", price)
}

func TestPriceOfAbsentDefaultsZero(t *testing.T) {
	db := newTestDB(t)
	repo := NewPricingRepo(db)

	price, priced, err := repo.PriceOf(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, priced)
	assert.True(t, price.IsZero())
}
