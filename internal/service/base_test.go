package service

import (
	"fmt"
	"strings"
	"testing"

	"go-warehouse-ledger/internal/model"
	"go-warehouse-ledger/internal/repository"
	"go-warehouse-ledger/internal/ws"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Depot{},
		&model.ProductDepot{},
		&model.Pricelist{},
		&model.ProductPrice{},
		&model.BusinessPartner{},
		&model.OrderForm{},
		&model.OrderDetail{},
		&model.ImportForm{},
		&model.ImportDetail{},
		&model.ExportForm{},
		&model.ExportDetail{},
	))
	return db
}

// fixture bundles the repositories and seeded reference data the
// transaction-engine tests need.
type fixture struct {
	db          *gorm.DB
	hub         *ws.Hub
	catalogRepo repository.CatalogRepository
	depotRepo   repository.DepotRepository
	pricingRepo repository.PricingRepository
	partnerRepo repository.PartnerRepository
	formRepo    repository.FormRepository

	product   model.Product
	depot     model.Depot
	partner   model.BusinessPartner
	pricelist model.Pricelist
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	hub := ws.NewHub()
	go hub.Run()

	f := &fixture{
		db:          db,
		hub:         hub,
		catalogRepo: repository.NewCatalogRepo(db),
		depotRepo:   repository.NewDepotRepo(db),
		pricingRepo: repository.NewPricingRepo(db),
		partnerRepo: repository.NewPartnerRepo(db),
		formRepo:    repository.NewFormRepo(db),
	}

	f.product = model.Product{Name: "Mineral Water 500ml", Unit: "bottle"}
	require.NoError(t, f.catalogRepo.CreateProduct(&f.product))

	f.depot = model.Depot{Name: "Central Depot"}
	require.NoError(t, f.depotRepo.Create(&f.depot))

	f.partner = model.BusinessPartner{Name: "Acme Trading"}
	require.NoError(t, f.partnerRepo.Create(&f.partner))

	f.pricelist = model.Pricelist{Name: "Standard"}
	require.NoError(t, f.pricingRepo.CreatePricelist(&f.pricelist))

	return f
}

func (f *fixture) orderService() OrderService {
	return NewOrderService(f.formRepo, f.catalogRepo, f.depotRepo, f.partnerRepo, f.db)
}

func (f *fixture) importService() ImportService {
	return NewImportService(f.formRepo, f.depotRepo, f.db, f.hub)
}

func (f *fixture) exportService(strict bool) ExportService {
	return NewExportService(f.formRepo, f.catalogRepo, f.depotRepo, f.partnerRepo, f.pricingRepo, f.db, f.hub, strict)
}

func (f *fixture) setPrice(t *testing.T, product model.Product, price int64) {
	t.Helper()
	require.NoError(t, f.pricingRepo.SetPrice(&model.ProductPrice{
		ProductID:   product.ID,
		PricelistID: f.pricelist.ID,
		Price:       decimal.NewFromInt(price),
	}))
}

func (f *fixture) stock(t *testing.T, product model.Product, qty int) {
	t.Helper()
	require.NoError(t, f.db.Transaction(func(tx *gorm.DB) error {
		return f.depotRepo.AdjustInventory(tx, product.ID, f.depot.ID, qty)
	}))
}

func (f *fixture) inventory(t *testing.T, product model.Product) int {
	t.Helper()
	qty, err := f.depotRepo.GetInventory(product.ID, f.depot.ID)
	require.NoError(t, err)
	return qty
}

// createOrder commits an order with one line for the fixture product.
func (f *fixture) createOrder(t *testing.T, qty int, price int64) *model.OrderFormResponse {
	t.Helper()
	order, err := f.orderService().CreateOrder(&CreateOrderRequest{
		PartnerID: f.partner.ID,
		DepotID:   f.depot.ID,
		Lines: []OrderLineRequest{
			{ProductID: f.product.ID, Quantity: qty, Price: decimal.NewFromInt(price)},
		},
	}, "tester")
	require.NoError(t, err)
	require.Len(t, order.Details, 1)
	return order
}
