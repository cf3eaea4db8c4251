package service

import (
	"errors"
	"strings"

	"go-warehouse-ledger/internal/model"
	"go-warehouse-ledger/internal/repository"
	"go-warehouse-ledger/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrCategoryInput rejects ambiguous category references on product
// creation: the caller names a category either by id or by name, never
// both.
var ErrCategoryInput = errors.New("exactly one of category_id or category_name is required")

type CatalogService interface {
	CreateProduct(req *CreateProductRequest, userID string) (*model.Product, error)
	GetAllProducts() ([]model.ProductResponse, error)
	GetProduct(id uuid.UUID) (*model.ProductResponse, error)
	GetAllCategories() ([]model.Category, error)
	ResolveOrCreateCategory(name string) (*model.Category, error)
	DisplayInventory(productID uuid.UUID) (int, error)
	DisplayPrice(productID uuid.UUID) (decimal.Decimal, error)
}

// CreateProductRequest carries the tagged category reference: exactly one
// of CategoryID (existing category) or CategoryName (get-or-create) must
// be set.
type CreateProductRequest struct {
	Name         string     `json:"name" validate:"required"`
	Unit         string     `json:"unit" validate:"required"`
	CategoryID   *uuid.UUID `json:"category_id"`
	CategoryName *string    `json:"category_name"`
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
	depotRepo   repository.DepotRepository
	pricingRepo repository.PricingRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository, depotRepo repository.DepotRepository, pricingRepo repository.PricingRepository) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		depotRepo:   depotRepo,
		pricingRepo: pricingRepo,
	}
}

func (s *catalogService) CreateProduct(req *CreateProductRequest, userID string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	var categoryID *uuid.UUID
	switch {
	case req.CategoryID != nil && req.CategoryName != nil:
		return nil, ErrCategoryInput
	case req.CategoryID != nil:
		category, err := s.catalogRepo.FindCategoryByID(*req.CategoryID)
		if err != nil {
			return nil, ErrCategoryNotFound
		}
		categoryID = &category.ID
	case req.CategoryName != nil:
		category, err := s.ResolveOrCreateCategory(*req.CategoryName)
		if err != nil {
			return nil, err
		}
		categoryID = &category.ID
	}

	product := &model.Product{
		Name:       req.Name,
		Unit:       req.Unit,
		CategoryID: categoryID,
	}
	product.CreatedBy = userID
	product.UpdatedBy = userID

	if err := s.catalogRepo.CreateProduct(product); err != nil {
		return nil, err
	}
	return s.catalogRepo.FindProductByID(product.ID)
}

func (s *catalogService) ResolveOrCreateCategory(name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("validation failed: field 'Category.Name' failed on tag 'required'")
	}
	return s.catalogRepo.ResolveOrCreateCategory(name)
}

// GetAllProducts resolves the display inventory (summed over depots) and
// the current-pricelist price for every product. With no pricelist yet,
// the catalog still lists; prices show as zero.
func (s *catalogService) GetAllProducts() ([]model.ProductResponse, error) {
	products, err := s.catalogRepo.FindAllProducts()
	if err != nil {
		return nil, err
	}

	var pricelistID *uuid.UUID
	if current, err := s.pricingRepo.CurrentPricelist(); err == nil {
		pricelistID = &current.ID
	} else if !errors.Is(err, repository.ErrNoPricelist) {
		return nil, err
	}

	responses := make([]model.ProductResponse, 0, len(products))
	for i := range products {
		p := &products[i]
		inventory, err := s.depotRepo.TotalInventory(p.ID)
		if err != nil {
			return nil, err
		}
		price := decimal.Zero
		if pricelistID != nil {
			price, _, err = s.pricingRepo.PriceOf(p.ID, *pricelistID)
			if err != nil {
				return nil, err
			}
		}
		responses = append(responses, p.ToResponse(inventory, price))
	}
	return responses, nil
}

func (s *catalogService) GetProduct(id uuid.UUID) (*model.ProductResponse, error) {
	product, err := s.catalogRepo.FindProductByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	inventory, err := s.depotRepo.TotalInventory(product.ID)
	if err != nil {
		return nil, err
	}
	price, err := s.DisplayPrice(product.ID)
	if err != nil {
		return nil, err
	}
	resp := product.ToResponse(inventory, price)
	return &resp, nil
}

func (s *catalogService) GetAllCategories() ([]model.Category, error) {
	return s.catalogRepo.FindAllCategories()
}

func (s *catalogService) DisplayInventory(productID uuid.UUID) (int, error) {
	return s.depotRepo.TotalInventory(productID)
}

// DisplayPrice resolves the product's price from the current pricelist.
// Unlike the catalog listing this fails loudly when no pricelist exists.
func (s *catalogService) DisplayPrice(productID uuid.UUID) (decimal.Decimal, error) {
	current, err := s.pricingRepo.CurrentPricelist()
	if err != nil {
		return decimal.Zero, err
	}
	price, _, err := s.pricingRepo.PriceOf(productID, current.ID)
	return price, err
}
