package repository

import (
	"errors"

	"go-warehouse-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrOverFulfillment is returned when an import line would push the
// cumulative fulfilled quantity of an order line past its ordered
// quantity.
var ErrOverFulfillment = errors.New("import quantity exceeds remaining order quantity")

// FormRepository reads committed documents and owns the fulfillment
// counter on order lines. Document creation happens inside the services'
// commit transactions, not here.
type FormRepository interface {
	FindAllOrders() ([]model.OrderForm, error)
	FindOrderByID(id uuid.UUID) (*model.OrderForm, error)
	FindOrderDetail(id uuid.UUID) (*model.OrderDetail, error)
	AddFulfillment(tx *gorm.DB, orderDetailID uuid.UUID, quantity int) error

	FindAllImports() ([]model.ImportForm, error)
	FindImportByID(id uuid.UUID) (*model.ImportForm, error)

	FindAllExports() ([]model.ExportForm, error)
	FindExportByID(id uuid.UUID) (*model.ExportForm, error)
}

type formRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) FormRepository {
	return &formRepo{db}
}

func (r *formRepo) FindAllOrders() ([]model.OrderForm, error) {
	var orders []model.OrderForm
	err := r.db.Preload("Partner").Preload("Depot").Preload("CreatedByUser").
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *formRepo) FindOrderByID(id uuid.UUID) (*model.OrderForm, error) {
	var order model.OrderForm
	err := r.db.Preload("Partner").Preload("Depot").Preload("CreatedByUser").
		Preload("Details").Preload("Details.Product").
		First(&order, "id = ?", id).Error
	return &order, err
}

func (r *formRepo) FindOrderDetail(id uuid.UUID) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	err := r.db.Preload("Product").First(&detail, "id = ?", id).Error
	return &detail, err
}

// AddFulfillment raises the fulfilled counter on an order line with a
// guarded UPDATE that refuses to exceed the ordered quantity. Zero rows
// affected means the guard fired. The counter serializes concurrent
// imports against the same order line the same way the inventory guard
// serializes stock.
func (r *formRepo) AddFulfillment(tx *gorm.DB, orderDetailID uuid.UUID, quantity int) error {
	res := tx.Model(&model.OrderDetail{}).
		Where("id = ? AND fulfilled + ? <= quantity", orderDetailID, quantity).
		UpdateColumn("fulfilled", gorm.Expr("fulfilled + ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOverFulfillment
	}
	return nil
}

func (r *formRepo) FindAllImports() ([]model.ImportForm, error) {
	var imports []model.ImportForm
	err := r.db.Preload("Order").Preload("Order.Partner").Preload("Order.Depot").
		Preload("CreatedByUser").Order("created_at DESC").Find(&imports).Error
	return imports, err
}

func (r *formRepo) FindImportByID(id uuid.UUID) (*model.ImportForm, error) {
	var form model.ImportForm
	err := r.db.Preload("Order").Preload("Order.Partner").Preload("Order.Depot").
		Preload("CreatedByUser").
		Preload("Details").Preload("Details.OrderDetail").Preload("Details.OrderDetail.Product").
		First(&form, "id = ?", id).Error
	return &form, err
}

func (r *formRepo) FindAllExports() ([]model.ExportForm, error) {
	var exports []model.ExportForm
	err := r.db.Preload("Partner").Preload("Depot").Preload("Pricelist").
		Preload("CreatedByUser").Order("created_at DESC").Find(&exports).Error
	return exports, err
}

func (r *formRepo) FindExportByID(id uuid.UUID) (*model.ExportForm, error) {
	var form model.ExportForm
	err := r.db.Preload("Partner").Preload("Depot").Preload("Pricelist").
		Preload("CreatedByUser").
		Preload("Details").Preload("Details.Product").
		First(&form, "id = ?", id).Error
	return &form, err
}
