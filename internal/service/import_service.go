package service

import (
	"fmt"

	"go-warehouse-ledger/internal/model"
	"go-warehouse-ledger/internal/repository"
	"go-warehouse-ledger/internal/ws"
	"go-warehouse-ledger/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ImportService interface {
	CreateImport(req *CreateImportRequest, userID, userName string) (*model.ImportFormResponse, error)
	GetAllImports() ([]model.ImportFormResponse, error)
	GetImport(id uuid.UUID) (*model.ImportFormResponse, error)
}

type ImportLineRequest struct {
	OrderDetailID uuid.UUID `json:"order_detail_id" validate:"uuid_required"`
	Quantity      int       `json:"quantity" validate:"required,gt=0"`
}

type CreateImportRequest struct {
	OrderID uuid.UUID           `json:"order_id" validate:"uuid_required"`
	Lines   []ImportLineRequest `json:"lines" validate:"required,min=1,dive"`
}

type importService struct {
	formRepo  repository.FormRepository
	depotRepo repository.DepotRepository
	db        *gorm.DB
	wsHub     *ws.Hub
}

func NewImportService(formRepo repository.FormRepository, depotRepo repository.DepotRepository, db *gorm.DB, hub *ws.Hub) ImportService {
	return &importService{
		formRepo:  formRepo,
		depotRepo: depotRepo,
		db:        db,
		wsHub:     hub,
	}
}

// CreateImport commits a goods receipt against an order. Every line
// references an order line; its price is always the price frozen on that
// order line, never client input. The fulfillment guard keeps the
// cumulative imported quantity within the ordered quantity across any
// number of imports, and inventory at the order's depot rises inside the
// same transaction.
func (s *importService) CreateImport(req *CreateImportRequest, userID, userName string) (*model.ImportFormResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	order, err := s.formRepo.FindOrderByID(req.OrderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	detailsByID := make(map[uuid.UUID]*model.OrderDetail, len(order.Details))
	for i := range order.Details {
		detailsByID[order.Details[i].ID] = &order.Details[i]
	}
	for _, line := range req.Lines {
		if _, ok := detailsByID[line.OrderDetailID]; !ok {
			return nil, ErrOrderLineNotFound
		}
	}

	form := &model.ImportForm{
		OrderID:         order.ID,
		CreatedByUserID: &userID,
	}
	form.CreatedBy = userID
	form.UpdatedBy = userID

	err = s.db.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		details := make([]model.ImportDetail, 0, len(req.Lines))
		for _, line := range req.Lines {
			orderDetail := detailsByID[line.OrderDetailID]

			// Guarded counter update: fails the whole document when the
			// cumulative imported quantity would exceed the ordered one.
			if err := s.formRepo.AddFulfillment(tx, orderDetail.ID, line.Quantity); err != nil {
				return err
			}
			if err := s.depotRepo.AdjustInventory(tx, orderDetail.ProductID, order.DepotID, line.Quantity); err != nil {
				return err
			}

			detail := model.ImportDetail{
				OrderDetailID: orderDetail.ID,
				Quantity:      line.Quantity,
				Price:         orderDetail.Price,
			}
			detail.CreatedBy = userID
			detail.UpdatedBy = userID
			details = append(details, detail)
			total = total.Add(orderDetail.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		form.Total = total
		form.Details = details
		return tx.Create(form).Error
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.StockEvent{
		Type:   "stock_update",
		Action: "import_committed",
		Document: map[string]interface{}{
			"id":       form.ID,
			"order_id": order.ID,
			"depot_id": order.DepotID,
			"total":    form.Total,
		},
		User:    map[string]interface{}{"id": userID, "name": userName},
		Message: fmt.Sprintf("%s received goods against order %s", userName, order.ID),
	})

	return s.GetImport(form.ID)
}

func (s *importService) GetAllImports() ([]model.ImportFormResponse, error) {
	imports, err := s.formRepo.FindAllImports()
	if err != nil {
		return nil, err
	}
	responses := make([]model.ImportFormResponse, 0, len(imports))
	for i := range imports {
		responses = append(responses, imports[i].ToResponse())
	}
	return responses, nil
}

func (s *importService) GetImport(id uuid.UUID) (*model.ImportFormResponse, error) {
	form, err := s.formRepo.FindImportByID(id)
	if err != nil {
		return nil, ErrImportNotFound
	}
	resp := form.ToResponse()
	return &resp, nil
}
