package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pricelist is a generation of prices. "The current pricelist" is the most
// recently created one.
type Pricelist struct {
	BaseModel
	Name      string     `gorm:"type:varchar(255)" json:"name"`
	ValidFrom *time.Time `gorm:"type:date" json:"valid_from,omitempty"`
}

// ProductPrice pins the price of a product within one pricelist.
type ProductPrice struct {
	BaseModel
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_product_pricelist" json:"product_id" validate:"uuid_required"`
	PricelistID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_product_pricelist" json:"pricelist_id" validate:"uuid_required"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`

	Product   Product   `json:"product,omitempty" validate:"-"`
	Pricelist Pricelist `json:"pricelist,omitempty" validate:"-"`
}
