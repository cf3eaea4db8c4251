package repository

import (
	"go-warehouse-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PartnerRepository interface {
	Create(partner *model.BusinessPartner) error
	FindAll() ([]model.BusinessPartner, error)
	FindByID(id uuid.UUID) (*model.BusinessPartner, error)
}

type partnerRepo struct {
	db *gorm.DB
}

func NewPartnerRepo(db *gorm.DB) PartnerRepository {
	return &partnerRepo{db}
}

func (r *partnerRepo) Create(partner *model.BusinessPartner) error {
	return r.db.Create(partner).Error
}

func (r *partnerRepo) FindAll() ([]model.BusinessPartner, error) {
	var partners []model.BusinessPartner
	err := r.db.Find(&partners).Error
	return partners, err
}

func (r *partnerRepo) FindByID(id uuid.UUID) (*model.BusinessPartner, error) {
	var partner model.BusinessPartner
	err := r.db.First(&partner, "id = ?", id).Error
	return &partner, err
}
