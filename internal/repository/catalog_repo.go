package repository

import (
	"go-warehouse-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatalogRepository interface {
	CreateProduct(product *model.Product) error
	FindAllProducts() ([]model.Product, error)
	FindProductByID(id uuid.UUID) (*model.Product, error)
	ResolveOrCreateCategory(name string) (*model.Category, error)
	FindCategoryByID(id uuid.UUID) (*model.Category, error)
	FindAllCategories() ([]model.Category, error)
}

type catalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) CatalogRepository {
	return &catalogRepo{db}
}

func (r *catalogRepo) CreateProduct(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *catalogRepo) FindAllProducts() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").Find(&products).Error
	return products, err
}

func (r *catalogRepo) FindProductByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").First(&product, "id = ?", id).Error
	return &product, err
}

// ResolveOrCreateCategory is an atomic get-or-create keyed by the unique
// name index: insert with ON CONFLICT DO NOTHING, then re-read. Two
// concurrent calls with the same name both end up with the single winning
// row, never a duplicate.
func (r *catalogRepo) ResolveOrCreateCategory(name string) (*model.Category, error) {
	category := model.Category{Name: name}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&category).Error
	if err != nil {
		return nil, err
	}

	// The insert may have lost the conflict race; re-read so the caller
	// always sees the persisted row.
	var existing model.Category
	if err := r.db.First(&existing, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *catalogRepo) FindCategoryByID(id uuid.UUID) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, "id = ?", id).Error
	return &category, err
}

func (r *catalogRepo) FindAllCategories() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Find(&categories).Error
	return categories, err
}
