package repository

import (
	"errors"

	"go-warehouse-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInsufficientStock is returned when an adjustment would drive the
// (product, depot) inventory below zero.
var ErrInsufficientStock = errors.New("insufficient stock remaining")

type DepotRepository interface {
	Create(depot *model.Depot) error
	FindAll() ([]model.Depot, error)
	FindByID(id uuid.UUID) (*model.Depot, error)
	GetInventory(productID, depotID uuid.UUID) (int, error)
	TotalInventory(productID uuid.UUID) (int, error)
	AdjustInventory(tx *gorm.DB, productID, depotID uuid.UUID, delta int) error
}

type depotRepo struct {
	db *gorm.DB
}

func NewDepotRepo(db *gorm.DB) DepotRepository {
	return &depotRepo{db}
}

func (r *depotRepo) Create(depot *model.Depot) error {
	return r.db.Create(depot).Error
}

func (r *depotRepo) FindAll() ([]model.Depot, error) {
	var depots []model.Depot
	err := r.db.Find(&depots).Error
	return depots, err
}

func (r *depotRepo) FindByID(id uuid.UUID) (*model.Depot, error) {
	var depot model.Depot
	err := r.db.First(&depot, "id = ?", id).Error
	return &depot, err
}

// GetInventory returns the stock level for a (product, depot) pair.
// Absence of a row means zero stock, not an error.
func (r *depotRepo) GetInventory(productID, depotID uuid.UUID) (int, error) {
	var row model.ProductDepot
	err := r.db.First(&row, "product_id = ? AND depot_id = ?", productID, depotID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return row.Inventory, nil
}

// TotalInventory sums a product's stock across every depot, for catalog
// display.
func (r *depotRepo) TotalInventory(productID uuid.UUID) (int, error) {
	var total int
	err := r.db.Model(&model.ProductDepot{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(inventory), 0)").
		Scan(&total).Error
	return total, err
}

// AdjustInventory applies a signed delta to the (product, depot) row.
// It must run inside the caller's transaction (tx) so a failing document
// rolls the adjustment back with everything else.
//
// The row is created on first use, then mutated with a single guarded
// UPDATE whose WHERE clause refuses to go negative. Zero rows affected
// means the guard fired: ErrInsufficientStock. The guard is the
// compare-and-swap that serializes concurrent commits on the same pair.
func (r *depotRepo) AdjustInventory(tx *gorm.DB, productID, depotID uuid.UUID, delta int) error {
	row := model.ProductDepot{ProductID: productID, DepotID: depotID}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "depot_id"}},
		DoNothing: true,
	}).Create(&row).Error; err != nil {
		return err
	}

	res := tx.Model(&model.ProductDepot{}).
		Where("product_id = ? AND depot_id = ? AND inventory + ? >= 0", productID, depotID, delta).
		UpdateColumn("inventory", gorm.Expr("inventory + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}
