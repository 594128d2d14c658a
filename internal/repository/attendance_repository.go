package repository

import (
	"time"

	"hr-inventory-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceFilter struct {
	UnitID      *uint
	PersonnelID *uint
	Date        string
	StartDate   string
	EndDate     string
	Status      string
}

type AttendanceRepository interface {
	// CreateIfAbsent inserts rec unless (personnel, date) already exists and
	// reports whether a row was written.
	CreateIfAbsent(rec *model.Attendance) (bool, error)
	GetByID(id uint) (*model.Attendance, error)
	GetAll(f AttendanceFilter) ([]model.Attendance, error)
	ReviewSubAdmin(id uint, status model.ApprovalStatus, byID uint, at time.Time, remarks string) (bool, error)
	ReviewAdmin(id uint, status model.ApprovalStatus, byID uint, at time.Time, remarks string) (bool, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) CreateIfAbsent(rec *model.Attendance) (bool, error) {
	res := r.db.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(rec)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *attendanceRepository) GetByID(id uint) (*model.Attendance, error) {
	var rec model.Attendance
	err := r.db.Preload("Personnel").Preload("MarkedBy").First(&rec, id).Error
	return &rec, err
}

func (r *attendanceRepository) GetAll(f AttendanceFilter) ([]model.Attendance, error) {
	var list []model.Attendance
	query := r.db.Preload("Personnel").Preload("MarkedBy").Preload("Unit")

	if f.UnitID != nil {
		query = query.Where("unit_id = ?", *f.UnitID)
	}
	if f.PersonnelID != nil {
		query = query.Where("personnel_id = ?", *f.PersonnelID)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	// Tanggal tunggal mengalahkan rentang
	if f.Date != "" {
		query = query.Where("date = ?", f.Date)
	} else {
		if f.StartDate != "" {
			query = query.Where("date >= ?", f.StartDate)
		}
		if f.EndDate != "" {
			query = query.Where("date <= ?", f.EndDate)
		}
	}

	err := query.Order("date desc").Order("id desc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) ReviewSubAdmin(id uint, status model.ApprovalStatus, byID uint, at time.Time, remarks string) (bool, error) {
	res := r.db.Model(&model.Attendance{}).
		Where("id = ? AND sub_admin_status = ?", id, model.ApprovalPending).
		Updates(map[string]interface{}{
			"sub_admin_status":  status,
			"sub_admin_by_id":   byID,
			"sub_admin_at":      at,
			"sub_admin_remarks": remarks,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *attendanceRepository) ReviewAdmin(id uint, status model.ApprovalStatus, byID uint, at time.Time, remarks string) (bool, error) {
	res := r.db.Model(&model.Attendance{}).
		Where("id = ? AND sub_admin_status = ? AND admin_status = ?", id, model.ApprovalApproved, model.ApprovalPending).
		Updates(map[string]interface{}{
			"admin_status":  status,
			"admin_by_id":   byID,
			"admin_at":      at,
			"admin_remarks": remarks,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
