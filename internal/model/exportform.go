package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExportForm is a goods issue to a customer. The header pins the pricelist
// that every line's price is resolved from; committing it lowers inventory
// at the depot.
type ExportForm struct {
	BaseModel
	PartnerID   uuid.UUID       `gorm:"type:uuid;not null" json:"partner_id" validate:"uuid_required"`
	DepotID     uuid.UUID       `gorm:"type:uuid;not null" json:"depot_id" validate:"uuid_required"`
	PricelistID uuid.UUID       `gorm:"type:uuid;not null" json:"pricelist_id"`
	Total       decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total"`

	Partner   BusinessPartner `json:"partner,omitempty" validate:"-"`
	Depot     Depot           `json:"depot,omitempty" validate:"-"`
	Pricelist Pricelist       `json:"pricelist,omitempty" validate:"-"`
	Details   []ExportDetail  `gorm:"foreignKey:FormID" json:"details,omitempty" validate:"-"`

	CreatedByUserID *string `gorm:"type:varchar(255)" json:"created_by_user_id,omitempty"`
	CreatedByUser   *User   `gorm:"foreignKey:CreatedByUserID;references:ID" json:"created_by_user,omitempty" validate:"-"`
}

// ExportDetail is one export line. Price is resolved once at commit time
// from the header's pricelist and immutable afterwards.
type ExportDetail struct {
	BaseModel
	FormID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"form_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Quantity  int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`

	Product Product `json:"product,omitempty" validate:"-"`
}

type ExportDetailResponse struct {
	ID       uuid.UUID       `json:"id"`
	Product  ProductRef      `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type ExportFormResponse struct {
	ID          uuid.UUID              `json:"id"`
	Partner     Ref                    `json:"partner"`
	Depot       Ref                    `json:"depot"`
	Pricelist   Ref                    `json:"pricelist"`
	CreatedDate time.Time              `json:"created_date"`
	Total       decimal.Decimal        `json:"total"`
	Details     []ExportDetailResponse `json:"details,omitempty"`
}

func (f *ExportForm) ToResponse() ExportFormResponse {
	resp := ExportFormResponse{
		ID:          f.ID,
		Partner:     Ref{ID: f.Partner.ID, Name: f.Partner.Name},
		Depot:       Ref{ID: f.Depot.ID, Name: f.Depot.Name},
		Pricelist:   Ref{ID: f.Pricelist.ID, Name: f.Pricelist.Name},
		CreatedDate: f.CreatedAt,
		Total:       f.Total,
	}
	for _, d := range f.Details {
		resp.Details = append(resp.Details, ExportDetailResponse{
			ID:       d.ID,
			Product:  ProductRef{ID: d.Product.ID, Name: d.Product.Name, Unit: d.Product.Unit},
			Quantity: d.Quantity,
			Price:    d.Price,
		})
	}
	return resp
}
