package repository

import (
	"errors"

	"go-warehouse-ledger/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNoPricelist is returned when a price resolution is attempted with no
// pricelist in existence.
var ErrNoPricelist = errors.New("no pricelist exists")

type PricingRepository interface {
	CreatePricelist(pricelist *model.Pricelist) error
	FindAllPricelists() ([]model.Pricelist, error)
	FindPricelistByID(id uuid.UUID) (*model.Pricelist, error)
	CurrentPricelist() (*model.Pricelist, error)
	SetPrice(price *model.ProductPrice) error
	PriceOf(productID, pricelistID uuid.UUID) (decimal.Decimal, bool, error)
}

type pricingRepo struct {
	db *gorm.DB
}

func NewPricingRepo(db *gorm.DB) PricingRepository {
	return &pricingRepo{db}
}

func (r *pricingRepo) CreatePricelist(pricelist *model.Pricelist) error {
	return r.db.Create(pricelist).Error
}

func (r *pricingRepo) FindAllPricelists() ([]model.Pricelist, error) {
	var pricelists []model.Pricelist
	err := r.db.Order("created_at DESC").Find(&pricelists).Error
	return pricelists, err
}

func (r *pricingRepo) FindPricelistByID(id uuid.UUID) (*model.Pricelist, error) {
	var pricelist model.Pricelist
	err := r.db.First(&pricelist, "id = ?", id).Error
	return &pricelist, err
}

// CurrentPricelist is the most recently created pricelist.
func (r *pricingRepo) CurrentPricelist() (*model.Pricelist, error) {
	var pricelist model.Pricelist
	err := r.db.Order("created_at DESC").First(&pricelist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoPricelist
	}
	if err != nil {
		return nil, err
	}
	return &pricelist, nil
}

// SetPrice upserts on the (product, pricelist) unique pair, so setting a
// price twice updates the existing row instead of duplicating it.
func (r *pricingRepo) SetPrice(price *model.ProductPrice) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "pricelist_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
	}).Create(price).Error
}

// PriceOf looks up the product's price within a pricelist. The bool
// reports whether a price row exists; the unpriced-product policy is the
// caller's decision.
func (r *pricingRepo) PriceOf(productID, pricelistID uuid.UUID) (decimal.Decimal, bool, error) {
	var price model.ProductPrice
	err := r.db.First(&price, "product_id = ? AND pricelist_id = ?", productID, pricelistID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}
	return price.Price, true, nil
}
