package repository

import (
	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/rbac"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PersonnelRepository interface {
	FindByID(id uint) (*model.Personnel, error)
	FindByEmail(email string) (*model.Personnel, error)
	ExistsByEmail(email string) (bool, error)
	Create(p *model.Personnel) error
	Update(p *model.Personnel) error
	UpdateRefreshToken(id uint, token string) error
	UpdatePassword(id uint, hash string) error
	List(unitID *uint) ([]model.Personnel, error)
	ActiveIDsInUnit(ids []uint, unitID uint) (map[uint]bool, error)
	GetByRoleAndUnit(role rbac.Role, unitID uint) ([]model.Personnel, error)
	AddServiceRecord(rec *model.ServiceRecord) error
}

type personnelRepository struct {
	db *gorm.DB
}

func NewPersonnelRepository(db *gorm.DB) PersonnelRepository {
	return &personnelRepository{db}
}

func (r *personnelRepository) FindByID(id uint) (*model.Personnel, error) {
	var p model.Personnel
	err := r.db.Preload("Unit").Preload("ServiceHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("service_records.id asc")
	}).First(&p, id).Error
	return &p, err
}

func (r *personnelRepository) FindByEmail(email string) (*model.Personnel, error) {
	var p model.Personnel
	err := r.db.Preload("Unit").Where("email = ?", email).First(&p).Error
	return &p, err
}

func (r *personnelRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Personnel{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *personnelRepository) Create(p *model.Personnel) error {
	return r.db.Omit(clause.Associations).Create(p).Error
}

func (r *personnelRepository) Update(p *model.Personnel) error {
	return r.db.Omit(clause.Associations).Save(p).Error
}

func (r *personnelRepository) UpdateRefreshToken(id uint, token string) error {
	return r.db.Model(&model.Personnel{}).Where("id = ?", id).Update("refresh_token", token).Error
}

func (r *personnelRepository) UpdatePassword(id uint, hash string) error {
	return r.db.Model(&model.Personnel{}).Where("id = ?", id).Update("password", hash).Error
}

func (r *personnelRepository) List(unitID *uint) ([]model.Personnel, error) {
	var list []model.Personnel
	query := r.db.Preload("Unit").Order("employee_code asc")
	if unitID != nil {
		query = query.Where("unit_id = ?", *unitID)
	}
	err := query.Find(&list).Error
	return list, err
}

// ActiveIDsInUnit returns the subset of ids that are active members of unitID.
func (r *personnelRepository) ActiveIDsInUnit(ids []uint, unitID uint) (map[uint]bool, error) {
	found := make(map[uint]bool, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	var rows []uint
	err := r.db.Model(&model.Personnel{}).
		Where("id IN ? AND unit_id = ? AND status = ?", ids, unitID, model.PersonnelActive).
		Pluck("id", &rows).Error
	if err != nil {
		return nil, err
	}
	for _, id := range rows {
		found[id] = true
	}
	return found, nil
}

func (r *personnelRepository) GetByRoleAndUnit(role rbac.Role, unitID uint) ([]model.Personnel, error) {
	var list []model.Personnel
	err := r.db.Where("role = ? AND unit_id = ? AND status = ?", role, unitID, model.PersonnelActive).Find(&list).Error
	return list, err
}

func (r *personnelRepository) AddServiceRecord(rec *model.ServiceRecord) error {
	return r.db.Create(rec).Error
}
