package service

import (
	"testing"

	"go-warehouse-ledger/internal/model"
	"go-warehouse-ledger/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture(t *testing.T) (*fixture, CatalogService) {
	f := newFixture(t)
	return f, NewCatalogService(f.catalogRepo, f.depotRepo, f.pricingRepo)
}

func TestCreateProductWithCategoryName(t *testing.T) {
	f, svc := catalogFixture(t)

	name := "Beverages"
	first, err := svc.CreateProduct(&CreateProductRequest{
		Name:         "Cola 330ml",
		Unit:         "can",
		CategoryName: &name,
	}, "tester")
	require.NoError(t, err)
	require.NotNil(t, first.Category)
	assert.Equal(t, "Beverages", first.Category.Name)

	// Same category name on a second product reuses the row.
	second, err := svc.CreateProduct(&CreateProductRequest{
		Name:         "Soda 330ml",
		Unit:         "can",
		CategoryName: &name,
	}, "tester")
	require.NoError(t, err)
	assert.Equal(t, first.Category.ID, second.Category.ID)

	var count int64
	require.NoError(t, f.db.Model(&model.Category{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateProductWithCategoryID(t *testing.T) {
	f, svc := catalogFixture(t)

	category, err := f.catalogRepo.ResolveOrCreateCategory("Snacks")
	require.NoError(t, err)

	product, err := svc.CreateProduct(&CreateProductRequest{
		Name:       "Crackers",
		Unit:       "pack",
		CategoryID: &category.ID,
	}, "tester")
	require.NoError(t, err)
	require.NotNil(t, product.Category)
	assert.Equal(t, category.ID, product.Category.ID)

	unknown := uuid.New()
	_, err = svc.CreateProduct(&CreateProductRequest{
		Name:       "Chips",
		Unit:       "pack",
		CategoryID: &unknown,
	}, "tester")
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCreateProductRejectsAmbiguousCategory(t *testing.T) {
	f, svc := catalogFixture(t)

	category, err := f.catalogRepo.ResolveOrCreateCategory("Snacks")
	require.NoError(t, err)
	name := "Snacks"

	_, err = svc.CreateProduct(&CreateProductRequest{
		Name:         "Crackers",
		Unit:         "pack",
		CategoryID:   &category.ID,
		CategoryName: &name,
	}, "tester")
	require.ErrorIs(t, err, ErrCategoryInput)
}

func TestCreateProductRequiresUnit(t *testing.T) {
	_, svc := catalogFixture(t)

	_, err := svc.CreateProduct(&CreateProductRequest{Name: "Nameless"}, "tester")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unit")
}

func TestGetAllProductsResolvesDisplayFields(t *testing.T) {
	f, svc := catalogFixture(t)
	f.setPrice(t, f.product, 8)
	f.stock(t, f.product, 4)

	products, err := svc.GetAllProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 4, products[0].Inventory)
	assert.True(t, products[0].Price.Equal(decimal.NewFromInt(8)))
}

func TestDisplayPriceRequiresPricelist(t *testing.T) {
	f, svc := catalogFixture(t)
	require.NoError(t, f.db.Unscoped().Delete(&model.Pricelist{}, "id = ?", f.pricelist.ID).Error)

	_, err := svc.DisplayPrice(f.product.ID)
	require.ErrorIs(t, err, repository.ErrNoPricelist)
}

func TestDisplayPriceUnpricedDefaultsZero(t *testing.T) {
	_, svc := catalogFixture(t)

	price, err := svc.DisplayPrice(uuid.New())
	require.NoError(t, err)
	assert.True(t, price.IsZero())
}
