package usecase

import (
	"fmt"
	"time"

	"hr-inventory-backend/internal/apperror"
	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/repository"

	"gorm.io/gorm"
)

type AttendanceRecordInput struct {
	PersonnelID uint                   `json:"personnel" validate:"required"`
	Date        string                 `json:"date" validate:"required"`
	Status      model.AttendanceStatus `json:"status" validate:"required,oneof=present absent leave half_day"`
	Remarks     string                 `json:"remarks"`
}

type MarkAttendanceInput struct {
	Records []AttendanceRecordInput `json:"records" validate:"required,min=1,dive"`
}

type ReviewInput struct {
	Remarks string `json:"remarks"`
}

type AttendanceQuery struct {
	Date        string `query:"date"`
	StartDate   string `query:"startDate"`
	EndDate     string `query:"endDate"`
	PersonnelID uint   `query:"personnel"`
	Status      string `query:"status" validate:"omitempty,oneof=present absent leave half_day"`
	UnitID      uint   `query:"unit"`
}

type AttendanceUsecase struct {
	db *gorm.DB
}

func NewAttendanceUsecase(db *gorm.DB) *AttendanceUsecase {
	return &AttendanceUsecase{db: db}
}

// Mark inserts one record per (personnel, date). Every personnel is checked
// before anything is written. Pairs that already exist, in the table or
// earlier in the same batch, are skipped and reported together as a single
// Conflict error returned alongside the records that were written.
func (u *AttendanceUsecase) Mark(records []AttendanceRecordInput, marker *model.Personnel) ([]model.Attendance, error) {
	if len(records) == 0 {
		return nil, apperror.Validation("At least one attendance record is required")
	}

	// 1. Validasi format tanggal dan personnel di unit yang sama
	ids := make([]uint, 0, len(records))
	for _, r := range records {
		if _, err := parseDate(r.Date, "date"); err != nil {
			return nil, err
		}
		ids = append(ids, r.PersonnelID)
	}
	valid, err := repository.NewPersonnelRepository(u.db).ActiveIDsInUnit(ids, marker.UnitID)
	if err != nil {
		return nil, dbErr(err)
	}
	for _, id := range ids {
		if !valid[id] {
			return nil, apperror.Validation(fmt.Sprintf("Personnel %d not found in your unit", id))
		}
	}

	// 2. Insert semua, duplikat dilewati
	var created []model.Attendance
	var duplicates []string
	err = u.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewAttendanceRepository(tx)
		for _, r := range records {
			rec := model.Attendance{
				PersonnelID:      r.PersonnelID,
				Date:             r.Date,
				Status:           r.Status,
				MarkedByID:       marker.ID,
				UnitID:           marker.UnitID,
				Remarks:          r.Remarks,
				SubAdminApproval: model.Approval{Status: model.ApprovalPending},
				AdminApproval:    model.Approval{Status: model.ApprovalPending},
			}
			inserted, err := repo.CreateIfAbsent(&rec)
			if err != nil {
				return err
			}
			if !inserted {
				duplicates = append(duplicates, fmt.Sprintf("Personnel %d already has attendance for %s", r.PersonnelID, r.Date))
				continue
			}
			created = append(created, rec)
		}
		return nil
	})
	if err != nil {
		return nil, dbErr(err)
	}

	if len(duplicates) > 0 {
		return created, apperror.Conflict(
			"Duplicate attendance entries found: some personnel already have attendance for the given date(s)",
			duplicates...,
		)
	}
	return created, nil
}

func (u *AttendanceUsecase) ApproveBySubAdmin(id uint, approver *model.Personnel, remarks string) (*model.Attendance, error) {
	return u.reviewSubAdmin(id, approver, model.ApprovalApproved, remarks)
}

func (u *AttendanceUsecase) RejectBySubAdmin(id uint, approver *model.Personnel, remarks string) (*model.Attendance, error) {
	return u.reviewSubAdmin(id, approver, model.ApprovalRejected, remarks)
}

func (u *AttendanceUsecase) ApproveByAdmin(id uint, approver *model.Personnel, remarks string) (*model.Attendance, error) {
	return u.reviewAdmin(id, approver, model.ApprovalApproved, remarks)
}

func (u *AttendanceUsecase) RejectByAdmin(id uint, approver *model.Personnel, remarks string) (*model.Attendance, error) {
	return u.reviewAdmin(id, approver, model.ApprovalRejected, remarks)
}

func (u *AttendanceUsecase) reviewSubAdmin(id uint, approver *model.Personnel, status model.ApprovalStatus, remarks string) (*model.Attendance, error) {
	repo := repository.NewAttendanceRepository(u.db)
	rec, err := u.loadForReview(repo, id, approver)
	if err != nil {
		return nil, err
	}
	if !rec.SubAdminApproval.IsPending() {
		return nil, apperror.InvalidState("Attendance already reviewed by sub_admin")
	}

	ok, err := repo.ReviewSubAdmin(id, status, approver.ID, time.Now(), remarks)
	if err != nil {
		return nil, dbErr(err)
	}
	if !ok {
		return nil, apperror.InvalidState("Attendance already reviewed by sub_admin")
	}
	return u.get(repo, id)
}

func (u *AttendanceUsecase) reviewAdmin(id uint, approver *model.Personnel, status model.ApprovalStatus, remarks string) (*model.Attendance, error) {
	repo := repository.NewAttendanceRepository(u.db)
	rec, err := u.loadForReview(repo, id, approver)
	if err != nil {
		return nil, err
	}
	if rec.SubAdminApproval.Status != model.ApprovalApproved {
		return nil, apperror.InvalidState("Attendance must be approved by sub_admin first")
	}
	if !rec.AdminApproval.IsPending() {
		return nil, apperror.InvalidState("Attendance already reviewed by admin")
	}

	ok, err := repo.ReviewAdmin(id, status, approver.ID, time.Now(), remarks)
	if err != nil {
		return nil, dbErr(err)
	}
	if !ok {
		return nil, apperror.InvalidState("Attendance already reviewed by admin")
	}
	return u.get(repo, id)
}

// loadForReview applies the unit check shared by both stages. Reviewers act only
// on their own unit, super admins included.
func (u *AttendanceUsecase) loadForReview(repo repository.AttendanceRepository, id uint, approver *model.Personnel) (*model.Attendance, error) {
	rec, err := repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, "Attendance record not found")
	}
	if rec.UnitID != approver.UnitID {
		return nil, apperror.Forbidden("Attendance does not belong to your unit")
	}
	return rec, nil
}

func (u *AttendanceUsecase) get(repo repository.AttendanceRepository, id uint) (*model.Attendance, error) {
	rec, err := repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, "Attendance record not found")
	}
	sanitizeAttendance(rec)
	return rec, nil
}

// List returns attendance newest date first. Non super admins only ever see
// their own unit whatever unit filter they pass.
func (u *AttendanceUsecase) List(actor *model.Personnel, q AttendanceQuery) ([]model.Attendance, error) {
	f := repository.AttendanceFilter{
		UnitID: scopeUnit(actor),
		Status: q.Status,
	}
	if f.UnitID == nil && q.UnitID != 0 {
		unitID := q.UnitID
		f.UnitID = &unitID
	}
	if q.PersonnelID != 0 {
		personnelID := q.PersonnelID
		f.PersonnelID = &personnelID
	}
	for _, d := range []struct {
		value string
		field string
		dst   *string
	}{
		{q.Date, "date", &f.Date},
		{q.StartDate, "startDate", &f.StartDate},
		{q.EndDate, "endDate", &f.EndDate},
	} {
		if d.value == "" {
			continue
		}
		if _, err := parseDate(d.value, d.field); err != nil {
			return nil, err
		}
		*d.dst = d.value
	}

	list, err := repository.NewAttendanceRepository(u.db).GetAll(f)
	if err != nil {
		return nil, dbErr(err)
	}
	for i := range list {
		sanitizeAttendance(&list[i])
	}
	return list, nil
}

func sanitizeAttendance(rec *model.Attendance) {
	if rec.Personnel != nil {
		rec.Personnel.Sanitize()
	}
	if rec.MarkedBy != nil {
		rec.MarkedBy.Sanitize()
	}
}
