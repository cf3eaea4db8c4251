package service

import (
	"errors"
	"time"

	"go-warehouse-ledger/internal/model"
	"go-warehouse-ledger/internal/repository"
	"go-warehouse-ledger/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errValidFromFormat = errors.New("invalid valid_from format, use YYYY-MM-DD")

type PricingService interface {
	CreatePricelist(req *CreatePricelistRequest, userID string) (*model.Pricelist, error)
	GetAllPricelists() ([]model.Pricelist, error)
	CurrentPricelist() (*model.Pricelist, error)
	SetProductPrice(pricelistID uuid.UUID, req *SetPriceRequest, userID string) (*model.ProductPrice, error)
	PriceOf(productID, pricelistID uuid.UUID) (decimal.Decimal, error)
}

type CreatePricelistRequest struct {
	Name      string  `json:"name" validate:"required"`
	ValidFrom *string `json:"valid_from"` // Format: YYYY-MM-DD
}

type SetPriceRequest struct {
	ProductID uuid.UUID       `json:"product_id" validate:"uuid_required"`
	Price     decimal.Decimal `json:"price"`
}

type pricingService struct {
	pricingRepo repository.PricingRepository
	catalogRepo repository.CatalogRepository
}

func NewPricingService(pricingRepo repository.PricingRepository, catalogRepo repository.CatalogRepository) PricingService {
	return &pricingService{
		pricingRepo: pricingRepo,
		catalogRepo: catalogRepo,
	}
}

func (s *pricingService) CreatePricelist(req *CreatePricelistRequest, userID string) (*model.Pricelist, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	var validFrom *time.Time
	if req.ValidFrom != nil && *req.ValidFrom != "" {
		parsed, err := time.Parse("2006-01-02", *req.ValidFrom)
		if err != nil {
			return nil, errValidFromFormat
		}
		validFrom = &parsed
	}

	pricelist := &model.Pricelist{
		Name:      req.Name,
		ValidFrom: validFrom,
	}
	pricelist.CreatedBy = userID
	pricelist.UpdatedBy = userID

	if err := s.pricingRepo.CreatePricelist(pricelist); err != nil {
		return nil, err
	}
	return pricelist, nil
}

func (s *pricingService) GetAllPricelists() ([]model.Pricelist, error) {
	return s.pricingRepo.FindAllPricelists()
}

func (s *pricingService) CurrentPricelist() (*model.Pricelist, error) {
	return s.pricingRepo.CurrentPricelist()
}

// SetProductPrice upserts the price of a product within a pricelist.
// Setting the same pair twice moves the price, it never duplicates the
// row.
func (s *pricingService) SetProductPrice(pricelistID uuid.UUID, req *SetPriceRequest, userID string) (*model.ProductPrice, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	if req.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	if _, err := s.pricingRepo.FindPricelistByID(pricelistID); err != nil {
		return nil, ErrPricelistNotFound
	}
	if _, err := s.catalogRepo.FindProductByID(req.ProductID); err != nil {
		return nil, ErrProductNotFound
	}

	price := &model.ProductPrice{
		ProductID:   req.ProductID,
		PricelistID: pricelistID,
		Price:       req.Price,
	}
	price.CreatedBy = userID
	price.UpdatedBy = userID

	if err := s.pricingRepo.SetPrice(price); err != nil {
		return nil, err
	}
	return price, nil
}

func (s *pricingService) PriceOf(productID, pricelistID uuid.UUID) (decimal.Decimal, error) {
	price, _, err := s.pricingRepo.PriceOf(productID, pricelistID)
	return price, err
}
