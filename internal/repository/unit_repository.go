package repository

import (
	"hr-inventory-backend/internal/model"

	"gorm.io/gorm"
)

type UnitRepository interface {
	GetAll(showInactive bool) ([]model.Unit, error)
	GetByID(id uint) (*model.Unit, error)
	GetByCode(code string) (*model.Unit, error)
	ExistsByCode(code string) (bool, error)
	Create(unit *model.Unit) error
	Update(unit *model.Unit) error
	SetActive(id uint, active bool) error
}

type unitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &unitRepository{db}
}

func (r *unitRepository) GetAll(showInactive bool) ([]model.Unit, error) {
	var units []model.Unit
	query := r.db.Order("name asc")
	if !showInactive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&units).Error
	return units, err
}

func (r *unitRepository) GetByID(id uint) (*model.Unit, error) {
	var unit model.Unit
	err := r.db.First(&unit, id).Error
	return &unit, err
}

func (r *unitRepository) GetByCode(code string) (*model.Unit, error) {
	var unit model.Unit
	err := r.db.Where("code = ?", code).First(&unit).Error
	return &unit, err
}

func (r *unitRepository) ExistsByCode(code string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Unit{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *unitRepository) Create(unit *model.Unit) error {
	return r.db.Create(unit).Error
}

func (r *unitRepository) Update(unit *model.Unit) error {
	return r.db.Save(unit).Error
}

func (r *unitRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&model.Unit{}).Where("id = ?", id).Update("is_active", active).Error
}
