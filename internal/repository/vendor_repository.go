package repository

import (
	"hr-inventory-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VendorRepository interface {
	GetAll(unitID *uint, showInactive bool) ([]model.Vendor, error)
	GetByID(id uint) (*model.Vendor, error)
	ExistsByNameInUnit(name string, unitID uint) (bool, error)
	Create(vendor *model.Vendor) error
	Update(vendor *model.Vendor) error
	SetActive(id uint, active bool) error
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db}
}

func (r *vendorRepository) GetAll(unitID *uint, showInactive bool) ([]model.Vendor, error) {
	var vendors []model.Vendor
	query := r.db.Preload("Unit").Order("name asc")
	if unitID != nil {
		query = query.Where("unit_id = ?", *unitID)
	}
	if !showInactive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepository) GetByID(id uint) (*model.Vendor, error) {
	var vendor model.Vendor
	err := r.db.Preload("Unit").First(&vendor, id).Error
	return &vendor, err
}

func (r *vendorRepository) ExistsByNameInUnit(name string, unitID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Vendor{}).Where("name = ? AND unit_id = ?", name, unitID).Count(&count).Error
	return count > 0, err
}

func (r *vendorRepository) Create(vendor *model.Vendor) error {
	return r.db.Omit(clause.Associations).Create(vendor).Error
}

func (r *vendorRepository) Update(vendor *model.Vendor) error {
	return r.db.Omit(clause.Associations).Save(vendor).Error
}

func (r *vendorRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&model.Vendor{}).Where("id = ?", id).Update("is_active", active).Error
}
