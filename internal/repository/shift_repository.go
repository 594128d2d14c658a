package repository

import (
	"time"

	"hr-inventory-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShiftRepository interface {
	Create(shift *model.Shift) error
	GetByID(id uint) (*model.Shift, error)
	GetAll(unitID *uint, status string) ([]model.Shift, error)
	// UpdatePending writes the editable columns and, when assignees is non-nil,
	// replaces the assignee rows. Nothing is written once the shift left pending.
	UpdatePending(shift *model.Shift, assignees []uint) (bool, error)
	Review(id uint, status model.ApprovalStatus, byID uint, at time.Time, remarks string) (bool, error)
}

type shiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db}
}

func (r *shiftRepository) Create(shift *model.Shift) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(shift).Error; err != nil {
			return err
		}
		return insertAssignees(tx, shift.ID, shift.AssigneeIDs())
	})
}

func (r *shiftRepository) GetByID(id uint) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.Preload("Assignees.Personnel").Preload("AssignedBy").First(&shift, id).Error
	return &shift, err
}

func (r *shiftRepository) GetAll(unitID *uint, status string) ([]model.Shift, error) {
	var list []model.Shift
	query := r.db.Preload("Assignees.Personnel").Preload("AssignedBy").Preload("Unit").
		Order("created_at desc").Order("id desc")
	if unitID != nil {
		query = query.Where("unit_id = ?", *unitID)
	}
	if status != "" {
		query = query.Where("approval_status = ?", status)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *shiftRepository) UpdatePending(shift *model.Shift, assignees []uint) (bool, error) {
	updated := false
	shift.UpdatedAt = time.Now()
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Shift{}).
			Where("id = ? AND approval_status = ?", shift.ID, model.ApprovalPending).
			Select("name", "start_time", "end_time", "effective_date", "remarks", "updated_at").
			Omit(clause.Associations).
			Updates(shift)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		updated = true

		if assignees == nil {
			return nil
		}
		if err := tx.Where("shift_id = ?", shift.ID).Delete(&model.ShiftAssignee{}).Error; err != nil {
			return err
		}
		return insertAssignees(tx, shift.ID, assignees)
	})
	return updated, err
}

func (r *shiftRepository) Review(id uint, status model.ApprovalStatus, byID uint, at time.Time, remarks string) (bool, error) {
	res := r.db.Model(&model.Shift{}).
		Where("id = ? AND approval_status = ?", id, model.ApprovalPending).
		Updates(map[string]interface{}{
			"approval_status":  status,
			"approval_by_id":   byID,
			"approval_at":      at,
			"approval_remarks": remarks,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func insertAssignees(tx *gorm.DB, shiftID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	rows := make([]model.ShiftAssignee, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		rows = append(rows, model.ShiftAssignee{ShiftID: shiftID, PersonnelID: id})
	}
	return tx.Omit(clause.Associations).Create(&rows).Error
}
