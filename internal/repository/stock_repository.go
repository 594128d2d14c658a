package repository

import (
	"time"

	"hr-inventory-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HistoryFilter narrows the ledger tables by unit and creation time (inclusive).
type HistoryFilter struct {
	UnitID *uint
	From   *time.Time
	To     *time.Time
}

type StockRepository interface {
	CreateStockIn(in *model.StockIn) error
	CreateStockOut(out *model.StockOut) error
	CreateStockReturn(ret *model.StockReturn) error
	GetStockIn(id uint) (*model.StockIn, error)
	GetStockReturn(id uint) (*model.StockReturn, error)
	CountStockOutsByRequest(requestID uint) (int64, error)
	ListStockIns(f HistoryFilter) ([]model.StockIn, error)
	ListStockOuts(f HistoryFilter) ([]model.StockOut, error)
	ListStockReturns(f HistoryFilter) ([]model.StockReturn, error)
}

type stockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) StockRepository {
	return &stockRepository{db}
}

func (r *stockRepository) CreateStockIn(in *model.StockIn) error {
	return r.db.Omit(clause.Associations).Create(in).Error
}

func (r *stockRepository) CreateStockOut(out *model.StockOut) error {
	return r.db.Omit(clause.Associations).Create(out).Error
}

func (r *stockRepository) CreateStockReturn(ret *model.StockReturn) error {
	return r.db.Omit(clause.Associations).Create(ret).Error
}

func (r *stockRepository) GetStockIn(id uint) (*model.StockIn, error) {
	var in model.StockIn
	err := r.db.Preload("Item").Preload("Vendor").Preload("ReceivedBy").First(&in, id).Error
	return &in, err
}

func (r *stockRepository) GetStockReturn(id uint) (*model.StockReturn, error) {
	var ret model.StockReturn
	err := r.db.Preload("Item").Preload("ReturnedBy").Preload("ReceivedBy").First(&ret, id).Error
	return &ret, err
}

func (r *stockRepository) CountStockOutsByRequest(requestID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.StockOut{}).Where("stock_request_id = ?", requestID).Count(&count).Error
	return count, err
}

func (r *stockRepository) ListStockIns(f HistoryFilter) ([]model.StockIn, error) {
	var list []model.StockIn
	err := applyHistory(r.db.Preload("Item").Preload("Vendor").Preload("ReceivedBy"), f).Find(&list).Error
	return list, err
}

func (r *stockRepository) ListStockOuts(f HistoryFilter) ([]model.StockOut, error) {
	var list []model.StockOut
	err := applyHistory(r.db.Preload("Item").Preload("IssuedTo").Preload("IssuedBy"), f).Find(&list).Error
	return list, err
}

func (r *stockRepository) ListStockReturns(f HistoryFilter) ([]model.StockReturn, error) {
	var list []model.StockReturn
	err := applyHistory(r.db.Preload("Item").Preload("ReturnedBy").Preload("ReceivedBy"), f).Find(&list).Error
	return list, err
}

func applyHistory(query *gorm.DB, f HistoryFilter) *gorm.DB {
	if f.UnitID != nil {
		query = query.Where("unit_id = ?", *f.UnitID)
	}
	if f.From != nil {
		query = query.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		query = query.Where("created_at <= ?", *f.To)
	}
	return query.Order("created_at desc")
}
