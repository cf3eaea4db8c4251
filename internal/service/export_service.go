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

type ExportService interface {
	CreateExport(req *CreateExportRequest, userID, userName string) (*model.ExportFormResponse, error)
	GetAllExports() ([]model.ExportFormResponse, error)
	GetExport(id uuid.UUID) (*model.ExportFormResponse, error)
}

type ExportLineRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// CreateExportRequest pins a pricelist for the whole document; a nil
// PricelistID pins the current (most recently created) one.
type CreateExportRequest struct {
	PartnerID   uuid.UUID           `json:"partner_id" validate:"uuid_required"`
	DepotID     uuid.UUID           `json:"depot_id" validate:"uuid_required"`
	PricelistID *uuid.UUID          `json:"pricelist_id"`
	Lines       []ExportLineRequest `json:"lines" validate:"required,min=1,dive"`
}

type exportService struct {
	formRepo    repository.FormRepository
	catalogRepo repository.CatalogRepository
	depotRepo   repository.DepotRepository
	partnerRepo repository.PartnerRepository
	pricingRepo repository.PricingRepository
	db          *gorm.DB
	wsHub       *ws.Hub

	// strictPricing rejects exports of products with no price in the
	// pinned pricelist instead of selling them at zero.
	strictPricing bool
}

func NewExportService(formRepo repository.FormRepository, catalogRepo repository.CatalogRepository, depotRepo repository.DepotRepository, partnerRepo repository.PartnerRepository, pricingRepo repository.PricingRepository, db *gorm.DB, hub *ws.Hub, strictPricing bool) ExportService {
	return &exportService{
		formRepo:      formRepo,
		catalogRepo:   catalogRepo,
		depotRepo:     depotRepo,
		partnerRepo:   partnerRepo,
		pricingRepo:   pricingRepo,
		db:            db,
		wsHub:         hub,
		strictPricing: strictPricing,
	}
}

// CreateExport commits a goods issue. Prices are resolved once from the
// pinned pricelist; every line's stock at the depot is checked before any
// adjustment, then all deductions run inside one transaction so a failing
// line leaves no partial stock change behind.
func (s *exportService) CreateExport(req *CreateExportRequest, userID, userName string) (*model.ExportFormResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	if _, err := s.partnerRepo.FindByID(req.PartnerID); err != nil {
		return nil, ErrPartnerNotFound
	}
	if _, err := s.depotRepo.FindByID(req.DepotID); err != nil {
		return nil, ErrDepotNotFound
	}

	var pricelist *model.Pricelist
	var err error
	if req.PricelistID != nil {
		pricelist, err = s.pricingRepo.FindPricelistByID(*req.PricelistID)
		if err != nil {
			return nil, ErrPricelistNotFound
		}
	} else {
		pricelist, err = s.pricingRepo.CurrentPricelist()
		if err != nil {
			return nil, err
		}
	}

	// Resolve prices and pre-check stock for every line before touching
	// anything.
	total := decimal.Zero
	details := make([]model.ExportDetail, 0, len(req.Lines))
	for _, line := range req.Lines {
		if _, err := s.catalogRepo.FindProductByID(line.ProductID); err != nil {
			return nil, ErrProductNotFound
		}
		price, priced, err := s.pricingRepo.PriceOf(line.ProductID, pricelist.ID)
		if err != nil {
			return nil, err
		}
		if !priced && s.strictPricing {
			return nil, ErrProductUnpriced
		}
		available, err := s.depotRepo.GetInventory(line.ProductID, req.DepotID)
		if err != nil {
			return nil, err
		}
		if available < line.Quantity {
			return nil, repository.ErrInsufficientStock
		}

		detail := model.ExportDetail{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     price,
		}
		detail.CreatedBy = userID
		detail.UpdatedBy = userID
		details = append(details, detail)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	form := &model.ExportForm{
		PartnerID:       req.PartnerID,
		DepotID:         req.DepotID,
		PricelistID:     pricelist.ID,
		Total:           total,
		Details:         details,
		CreatedByUserID: &userID,
	}
	form.CreatedBy = userID
	form.UpdatedBy = userID

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// The guard inside AdjustInventory re-checks under the commit, so
		// a concurrent export racing past the pre-check still cannot
		// overdraw; the whole document rolls back instead.
		for _, line := range req.Lines {
			if err := s.depotRepo.AdjustInventory(tx, line.ProductID, req.DepotID, -line.Quantity); err != nil {
				return err
			}
		}
		return tx.Create(form).Error
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.StockEvent{
		Type:   "stock_update",
		Action: "export_committed",
		Document: map[string]interface{}{
			"id":           form.ID,
			"depot_id":     form.DepotID,
			"pricelist_id": form.PricelistID,
			"total":        form.Total,
		},
		User:    map[string]interface{}{"id": userID, "name": userName},
		Message: fmt.Sprintf("%s issued goods from depot %s", userName, form.DepotID),
	})

	return s.GetExport(form.ID)
}

func (s *exportService) GetAllExports() ([]model.ExportFormResponse, error) {
	exports, err := s.formRepo.FindAllExports()
	if err != nil {
		return nil, err
	}
	responses := make([]model.ExportFormResponse, 0, len(exports))
	for i := range exports {
		responses = append(responses, exports[i].ToResponse())
	}
	return responses, nil
}

func (s *exportService) GetExport(id uuid.UUID) (*model.ExportFormResponse, error) {
	form, err := s.formRepo.FindExportByID(id)
	if err != nil {
		return nil, ErrExportNotFound
	}
	resp := form.ToResponse()
	return &resp, nil
}
