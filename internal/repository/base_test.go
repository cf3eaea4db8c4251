package repository

import (
	"fmt"
	"strings"
	"testing"

	"go-warehouse-ledger/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a named in-memory sqlite database (one per test, shared
// across the pool's connections) and migrates the full schema.
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
