package model

import "github.com/google/uuid"

// Depot is a stock-holding location.
type Depot struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
}

// ProductDepot is the inventory record for one (product, depot) pair.
// Rows are created lazily on the first transaction touching the pair and
// mutated only through DepotRepository.AdjustInventory. Inventory never
// goes negative.
type ProductDepot struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_depot" json:"product_id"`
	DepotID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_depot" json:"depot_id"`
	Inventory int       `gorm:"not null;default:0" json:"inventory"`

	Product Product `json:"product,omitempty" validate:"-"`
	Depot   Depot   `json:"depot,omitempty" validate:"-"`
}
