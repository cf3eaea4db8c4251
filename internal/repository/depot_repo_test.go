package repository

import (
	"testing"

	"go-warehouse-ledger/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetInventoryMissingRowIsZero(t *testing.T) {
	db := newTestDB(t)
	repo := NewDepotRepo(db)

	qty, err := repo.GetInventory(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}

func TestAdjustInventoryCreatesRowAndAccumulates(t *testing.T) {
	db := newTestDB(t)
	repo := NewDepotRepo(db)
	productID, depotID := uuid.New(), uuid.New()

	err := db.Transaction(func(tx *gorm.DB) error {
		return repo.AdjustInventory(tx, productID, depotID, 10)
	})
	require.NoError(t, err)

	qty, err := repo.GetInventory(productID, depotID)
	require.NoError(t, err)
	assert.Equal(t, 10, qty)

	err = db.Transaction(func(tx *gorm.DB) error {
		return repo.AdjustInventory(tx, productID, depotID, -7)
	})
	require.NoError(t, err)

	qty, err = repo.GetInventory(productID, depotID)
	require.NoError(t, err)
	assert.Equal(t, 3, qty)

	// Only one row exists for the pair
	var count int64
	require.NoError(t, db.Model(&model.ProductDepot{}).
		Where("product_id = ?", productID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAdjustInventoryRefusesNegative(t *testing.T) {
	db := newTestDB(t)
	repo := NewDepotRepo(db)
	productID, depotID := uuid.New(), uuid.New()

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return repo.AdjustInventory(tx, productID, depotID, 3)
	}))

	err := db.Transaction(func(tx *gorm.DB) error {
		return repo.AdjustInventory(tx, productID, depotID, -5)
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	qty, err := repo.GetInventory(productID, depotID)
	require.NoError(t, err)
	assert.Equal(t, 3, qty)
}

func TestAdjustInventoryFirstUseNegativeFails(t *testing.T) {
	db := newTestDB(t)
	repo := NewDepotRepo(db)
	productID, depotID := uuid.New(), uuid.New()

	err := db.Transaction(func(tx *gorm.DB) error {
		return repo.AdjustInventory(tx, productID, depotID, -1)
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	// The rolled-back commit leaves no stock behind either way.
	qty, err := repo.GetInventory(productID, depotID)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}

func TestTotalInventorySumsAcrossDepots(t *testing.T) {
	db := newTestDB(t)
	repo := NewDepotRepo(db)
	productID := uuid.New()
	depotA, depotB := uuid.New(), uuid.New()

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		if err := repo.AdjustInventory(tx, productID, depotA, 4); err != nil {
			return err
		}
		return repo.AdjustInventory(tx, productID, depotB, 6)
	}))

	total, err := repo.TotalInventory(productID)
	require.NoError(t, err)
	assert.Equal(t, 10, total)
}
