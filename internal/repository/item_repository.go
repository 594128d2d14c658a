package repository

import (
	"hr-inventory-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository interface {
	GetByID(id uint) (*model.Item, error)
	ExistsByNameInUnit(name string, unitID uint) (bool, error)
	GetInventory(unitID *uint) ([]model.Item, error)
	Create(item *model.Item) error
	UpdateDetails(item *model.Item) error
	SetActive(id uint, active bool) error
	IncrementStock(id uint, qty int) error
	// DecrementStock subtracts qty only while current_stock >= qty and reports
	// whether the row was changed.
	DecrementStock(id uint, qty int) (bool, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db}
}

func (r *itemRepository) GetByID(id uint) (*model.Item, error) {
	var item model.Item
	err := r.db.Preload("Unit").First(&item, id).Error
	return &item, err
}

func (r *itemRepository) ExistsByNameInUnit(name string, unitID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Item{}).Where("name = ? AND unit_id = ?", name, unitID).Count(&count).Error
	return count > 0, err
}

func (r *itemRepository) GetInventory(unitID *uint) ([]model.Item, error) {
	var items []model.Item
	query := r.db.Preload("Unit").Where("is_active = ?", true).Order("name asc")
	if unitID != nil {
		query = query.Where("unit_id = ?", *unitID)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *itemRepository) Create(item *model.Item) error {
	return r.db.Omit(clause.Associations).Create(item).Error
}

// UpdateDetails writes the editable catalog fields. current_stock is never
// touched here; it only moves through the ledger methods.
func (r *itemRepository) UpdateDetails(item *model.Item) error {
	return r.db.Model(&model.Item{}).Where("id = ?", item.ID).
		Select("name", "category", "uom", "min_stock_level", "is_active").
		Updates(item).Error
}

func (r *itemRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&model.Item{}).Where("id = ?", id).Update("is_active", active).Error
}

func (r *itemRepository) IncrementStock(id uint, qty int) error {
	return r.db.Model(&model.Item{}).Where("id = ?", id).
		Update("current_stock", gorm.Expr("current_stock + ?", qty)).Error
}

func (r *itemRepository) DecrementStock(id uint, qty int) (bool, error) {
	res := r.db.Model(&model.Item{}).Where("id = ? AND current_stock >= ?", id, qty).
		Update("current_stock", gorm.Expr("current_stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
