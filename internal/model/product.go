package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is created implicitly when a product names one that does not
// exist yet. The unique index on name is what makes get-or-create safe
// under concurrent identical requests.
type Category struct {
	BaseModel
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
}

type Product struct {
	BaseModel
	Name       string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Unit       string     `gorm:"type:varchar(20);not null" json:"unit" validate:"required"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category   *Category  `json:"category,omitempty" validate:"-"`
}

// ProductResponse is the catalog read model: product identity plus the
// display inventory (summed over depots) and the current-pricelist price.
type ProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Category  *Ref            `json:"category,omitempty"`
	Inventory int             `json:"inventory"`
	Price     decimal.Decimal `json:"price"`
}

func (p *Product) ToResponse(inventory int, price decimal.Decimal) ProductResponse {
	resp := ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Unit:      p.Unit,
		Inventory: inventory,
		Price:     price,
	}
	if p.Category != nil {
		resp.Category = &Ref{ID: p.Category.ID, Name: p.Category.Name}
	}
	return resp
}
