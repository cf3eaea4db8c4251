package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImportForm is a goods receipt fulfilling an order. Committing it raises
// inventory at the order's depot.
type ImportForm struct {
	BaseModel
	OrderID uuid.UUID       `gorm:"type:uuid;not null" json:"order_id" validate:"uuid_required"`
	Total   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total"`

	Order   OrderForm      `json:"order,omitempty" validate:"-"`
	Details []ImportDetail `gorm:"foreignKey:FormID" json:"details,omitempty" validate:"-"`

	CreatedByUserID *string `gorm:"type:varchar(255)" json:"created_by_user_id,omitempty"`
	CreatedByUser   *User   `gorm:"foreignKey:CreatedByUserID;references:ID" json:"created_by_user,omitempty" validate:"-"`
}

// ImportDetail receives part (or all) of one order line. Price is always
// the price frozen on the referenced order line, never client input.
type ImportDetail struct {
	BaseModel
	FormID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"form_id"`
	OrderDetailID uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_detail_id" validate:"uuid_required"`
	Quantity      int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`

	OrderDetail OrderDetail `json:"order_detail,omitempty" validate:"-"`
}

type ImportDetailResponse struct {
	ID       uuid.UUID       `json:"id"`
	Product  ProductRef      `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type ImportFormResponse struct {
	ID          uuid.UUID              `json:"id"`
	Order       OrderFormResponse      `json:"order"`
	CreatedDate time.Time              `json:"created_date"`
	Total       decimal.Decimal        `json:"total"`
	Details     []ImportDetailResponse `json:"details,omitempty"`
}

func (f *ImportForm) ToResponse() ImportFormResponse {
	resp := ImportFormResponse{
		ID:          f.ID,
		Order:       f.Order.ToResponse(),
		CreatedDate: f.CreatedAt,
		Total:       f.Total,
	}
	for _, d := range f.Details {
		p := d.OrderDetail.Product
		resp.Details = append(resp.Details, ImportDetailResponse{
			ID:       d.ID,
			Product:  ProductRef{ID: p.ID, Name: p.Name, Unit: p.Unit},
			Quantity: d.Quantity,
			Price:    d.Price,
		})
	}
	return resp
}
