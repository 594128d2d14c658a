package repository

import (
	"time"

	"hr-inventory-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockRequestRepository interface {
	Create(req *model.StockRequest) error
	GetByID(id uint) (*model.StockRequest, error)
	GetAll(unitID *uint, status string) ([]model.StockRequest, error)
	GetByRequester(requesterID, unitID uint) ([]model.StockRequest, error)
	// MarkApproved and MarkRejected only move a request that is still pending.
	MarkApproved(id, reviewerID uint, at time.Time) (bool, error)
	MarkRejected(id, reviewerID uint, reason string, at time.Time) (bool, error)
}

type stockRequestRepository struct {
	db *gorm.DB
}

func NewStockRequestRepository(db *gorm.DB) StockRequestRepository {
	return &stockRequestRepository{db}
}

func (r *stockRequestRepository) Create(req *model.StockRequest) error {
	return r.db.Omit(clause.Associations).Create(req).Error
}

func (r *stockRequestRepository) GetByID(id uint) (*model.StockRequest, error) {
	var req model.StockRequest
	err := r.db.Preload("Item").Preload("RequestedBy").Preload("ReviewedBy").First(&req, id).Error
	return &req, err
}

func (r *stockRequestRepository) GetAll(unitID *uint, status string) ([]model.StockRequest, error) {
	var list []model.StockRequest
	query := r.db.Preload("Item").Preload("RequestedBy").Preload("ReviewedBy").Order("created_at desc")
	if unitID != nil {
		query = query.Where("unit_id = ?", *unitID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *stockRequestRepository) GetByRequester(requesterID, unitID uint) ([]model.StockRequest, error) {
	var list []model.StockRequest
	err := r.db.Preload("Item").Preload("ReviewedBy").
		Where("requested_by_id = ? AND unit_id = ?", requesterID, unitID).
		Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *stockRequestRepository) MarkApproved(id, reviewerID uint, at time.Time) (bool, error) {
	return r.review(id, map[string]interface{}{
		"status":         model.StockRequestApproved,
		"reviewed_by_id": reviewerID,
		"reviewed_at":    at,
	})
}

func (r *stockRequestRepository) MarkRejected(id, reviewerID uint, reason string, at time.Time) (bool, error) {
	return r.review(id, map[string]interface{}{
		"status":           model.StockRequestRejected,
		"reviewed_by_id":   reviewerID,
		"reviewed_at":      at,
		"rejection_reason": reason,
	})
}

func (r *stockRequestRepository) review(id uint, fields map[string]interface{}) (bool, error) {
	res := r.db.Model(&model.StockRequest{}).
		Where("id = ? AND status = ?", id, model.StockRequestPending).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
