package repository

import (
	"testing"

	"go-warehouse-ledger/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOrCreateCategoryIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepo(db)

	first, err := repo.ResolveOrCreateCategory("Beverages")
	require.NoError(t, err)
	second, err := repo.ResolveOrCreateCategory("Beverages")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.Category{}).
		Where("name = ?", "Beverages").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveOrCreateCategoryDistinctNames(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepo(db)

	beverages, err := repo.ResolveOrCreateCategory("Beverages")
	require.NoError(t, err)
	snacks, err := repo.ResolveOrCreateCategory("Snacks")
	require.NoError(t, err)

	assert.NotEqual(t, beverages.ID, snacks.ID)
}
