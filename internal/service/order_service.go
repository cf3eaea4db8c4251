package service

import (
	"go-warehouse-ledger/internal/model"
	"go-warehouse-ledger/internal/repository"
	"go-warehouse-ledger/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService interface {
	CreateOrder(req *CreateOrderRequest, userID string) (*model.OrderFormResponse, error)
	GetAllOrders() ([]model.OrderFormResponse, error)
	GetOrder(id uuid.UUID) (*model.OrderFormResponse, error)
}

type OrderLineRequest struct {
	ProductID uuid.UUID       `json:"product_id" validate:"uuid_required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
}

type CreateOrderRequest struct {
	PartnerID uuid.UUID          `json:"partner_id" validate:"uuid_required"`
	DepotID   uuid.UUID          `json:"depot_id" validate:"uuid_required"`
	Lines     []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

type orderService struct {
	formRepo    repository.FormRepository
	catalogRepo repository.CatalogRepository
	depotRepo   repository.DepotRepository
	partnerRepo repository.PartnerRepository
	db          *gorm.DB
}

func NewOrderService(formRepo repository.FormRepository, catalogRepo repository.CatalogRepository, depotRepo repository.DepotRepository, partnerRepo repository.PartnerRepository, db *gorm.DB) OrderService {
	return &orderService{
		formRepo:    formRepo,
		catalogRepo: catalogRepo,
		depotRepo:   depotRepo,
		partnerRepo: partnerRepo,
		db:          db,
	}
}

// CreateOrder commits a purchase order: header plus lines in one
// transaction. Line prices are the caller's negotiated purchase prices,
// snapshotted as-is; stock is not touched until an import fulfills the
// order.
func (s *orderService) CreateOrder(req *CreateOrderRequest, userID string) (*model.OrderFormResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	if _, err := s.partnerRepo.FindByID(req.PartnerID); err != nil {
		return nil, ErrPartnerNotFound
	}
	if _, err := s.depotRepo.FindByID(req.DepotID); err != nil {
		return nil, ErrDepotNotFound
	}

	total := decimal.Zero
	details := make([]model.OrderDetail, 0, len(req.Lines))
	for _, line := range req.Lines {
		if line.Price.IsNegative() {
			return nil, ErrNegativePrice
		}
		if _, err := s.catalogRepo.FindProductByID(line.ProductID); err != nil {
			return nil, ErrProductNotFound
		}
		detail := model.OrderDetail{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
		detail.CreatedBy = userID
		detail.UpdatedBy = userID
		details = append(details, detail)
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	form := &model.OrderForm{
		PartnerID:       req.PartnerID,
		DepotID:         req.DepotID,
		Total:           total,
		Details:         details,
		CreatedByUserID: &userID,
	}
	form.CreatedBy = userID
	form.UpdatedBy = userID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(form).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrder(form.ID)
}

func (s *orderService) GetAllOrders() ([]model.OrderFormResponse, error) {
	orders, err := s.formRepo.FindAllOrders()
	if err != nil {
		return nil, err
	}
	responses := make([]model.OrderFormResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, orders[i].ToResponse())
	}
	return responses, nil
}

func (s *orderService) GetOrder(id uuid.UUID) (*model.OrderFormResponse, error) {
	order, err := s.formRepo.FindOrderByID(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	resp := order.ToResponse()
	return &resp, nil
}
