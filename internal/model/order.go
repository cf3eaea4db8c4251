package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderForm is a purchase order header. It has no inventory effect of its
// own; goods arrive later through one or more ImportForms referencing it.
type OrderForm struct {
	BaseModel
	PartnerID uuid.UUID       `gorm:"type:uuid;not null" json:"partner_id" validate:"uuid_required"`
	DepotID   uuid.UUID       `gorm:"type:uuid;not null" json:"depot_id" validate:"uuid_required"`
	Total     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total"`

	Partner BusinessPartner `json:"partner,omitempty" validate:"-"`
	Depot   Depot           `json:"depot,omitempty" validate:"-"`
	Details []OrderDetail   `gorm:"foreignKey:FormID" json:"details,omitempty" validate:"-"`

	CreatedByUserID *string `gorm:"type:varchar(255)" json:"created_by_user_id,omitempty"`
	CreatedByUser   *User   `gorm:"foreignKey:CreatedByUserID;references:ID" json:"created_by_user,omitempty" validate:"-"`
}

// OrderDetail is one order line. Price is the negotiated purchase price
// snapshotted at order time; Fulfilled tracks the cumulative quantity
// received through imports and may never exceed Quantity.
type OrderDetail struct {
	BaseModel
	FormID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"form_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Quantity  int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Fulfilled int             `gorm:"not null;default:0" json:"fulfilled"`

	Product Product `json:"product,omitempty" validate:"-"`
}

type OrderDetailResponse struct {
	ID       uuid.UUID       `json:"id"`
	Product  ProductRef      `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderFormResponse struct {
	ID          uuid.UUID             `json:"id"`
	Partner     Ref                   `json:"partner"`
	Depot       Ref                   `json:"depot"`
	CreatedDate time.Time             `json:"created_date"`
	Total       decimal.Decimal       `json:"total"`
	Details     []OrderDetailResponse `json:"details,omitempty"`
}

func (o *OrderForm) ToResponse() OrderFormResponse {
	resp := OrderFormResponse{
		ID:          o.ID,
		Partner:     Ref{ID: o.Partner.ID, Name: o.Partner.Name},
		Depot:       Ref{ID: o.Depot.ID, Name: o.Depot.Name},
		CreatedDate: o.CreatedAt,
		Total:       o.Total,
	}
	for _, d := range o.Details {
		resp.Details = append(resp.Details, OrderDetailResponse{
			ID:       d.ID,
			Product:  ProductRef{ID: d.Product.ID, Name: d.Product.Name, Unit: d.Product.Unit},
			Quantity: d.Quantity,
			Price:    d.Price,
		})
	}
	return resp
}
