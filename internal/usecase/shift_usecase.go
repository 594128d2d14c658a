package usecase

import (
	"fmt"
	"regexp"
	"time"

	"hr-inventory-backend/internal/apperror"
	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/rbac"
	"hr-inventory-backend/internal/repository"

	"gorm.io/gorm"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type CreateShiftInput struct {
	Name          string `json:"name" validate:"required"`
	StartTime     string `json:"startTime" validate:"required"`
	EndTime       string `json:"endTime" validate:"required"`
	AssignedTo    []uint `json:"assignedTo"`
	EffectiveDate string `json:"effectiveDate" validate:"required"`
	Remarks       string `json:"remarks"`
}

type UpdateShiftInput struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	StartTime     *string `json:"startTime"`
	EndTime       *string `json:"endTime"`
	AssignedTo    []uint  `json:"assignedTo"`
	EffectiveDate *string `json:"effectiveDate"`
	Remarks       *string `json:"remarks"`
}

type ShiftUsecase struct {
	db *gorm.DB
}

func NewShiftUsecase(db *gorm.DB) *ShiftUsecase {
	return &ShiftUsecase{db: db}
}

func (u *ShiftUsecase) Create(in CreateShiftInput, creator *model.Personnel) (*model.Shift, error) {
	if err := validateShiftFields(in.StartTime, in.EndTime, in.EffectiveDate); err != nil {
		return nil, err
	}
	// 1. Semua personnel yang ditugaskan harus aktif di unit pembuat
	if err := u.checkAssignees(in.AssignedTo, creator.UnitID); err != nil {
		return nil, err
	}

	shift := &model.Shift{
		Name:          in.Name,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		EffectiveDate: in.EffectiveDate,
		AssignedByID:  creator.ID,
		UnitID:        creator.UnitID,
		Remarks:       in.Remarks,
		Approval:      model.Approval{Status: model.ApprovalPending},
	}
	for _, id := range in.AssignedTo {
		shift.Assignees = append(shift.Assignees, model.ShiftAssignee{PersonnelID: id})
	}

	// 2. Simpan shift beserta daftar personnel
	if err := repository.NewShiftRepository(u.db).Create(shift); err != nil {
		return nil, dbErr(err)
	}
	return u.Get(shift.ID)
}

// Update edits a shift that is still pending. Only its creator or a super admin
// may do so, and only within the same unit.
func (u *ShiftUsecase) Update(id uint, in UpdateShiftInput, user *model.Personnel) (*model.Shift, error) {
	repo := repository.NewShiftRepository(u.db)
	shift, err := repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, "Shift not found")
	}
	if shift.UnitID != user.UnitID {
		return nil, apperror.Forbidden("Shift does not belong to your unit")
	}
	if !shift.Approval.IsPending() {
		return nil, apperror.InvalidState("Cannot update a shift that has been reviewed")
	}
	if user.Role != rbac.RoleSuperAdmin && shift.AssignedByID != user.ID {
		return nil, apperror.Forbidden("Only the shift creator can update it")
	}

	if in.Name != nil {
		shift.Name = *in.Name
	}
	if in.StartTime != nil {
		shift.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		shift.EndTime = *in.EndTime
	}
	if in.EffectiveDate != nil {
		shift.EffectiveDate = *in.EffectiveDate
	}
	if in.Remarks != nil {
		shift.Remarks = *in.Remarks
	}
	if err := validateShiftFields(shift.StartTime, shift.EndTime, shift.EffectiveDate); err != nil {
		return nil, err
	}
	if in.AssignedTo != nil {
		if err := u.checkAssignees(in.AssignedTo, shift.UnitID); err != nil {
			return nil, err
		}
	}

	ok, err := repo.UpdatePending(shift, in.AssignedTo)
	if err != nil {
		return nil, dbErr(err)
	}
	if !ok {
		return nil, apperror.InvalidState("Cannot update a shift that has been reviewed")
	}
	return u.Get(id)
}

func (u *ShiftUsecase) Approve(id uint, approver *model.Personnel, remarks string) (*model.Shift, error) {
	return u.review(id, approver, model.ApprovalApproved, remarks)
}

func (u *ShiftUsecase) Reject(id uint, approver *model.Personnel, remarks string) (*model.Shift, error) {
	return u.review(id, approver, model.ApprovalRejected, remarks)
}

func (u *ShiftUsecase) review(id uint, approver *model.Personnel, status model.ApprovalStatus, remarks string) (*model.Shift, error) {
	repo := repository.NewShiftRepository(u.db)
	shift, err := repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, "Shift not found")
	}
	if shift.UnitID != approver.UnitID {
		return nil, apperror.Forbidden("Shift does not belong to your unit")
	}
	if !shift.Approval.IsPending() {
		return nil, apperror.InvalidState("Shift has already been reviewed")
	}

	ok, err := repo.Review(id, status, approver.ID, time.Now(), remarks)
	if err != nil {
		return nil, dbErr(err)
	}
	if !ok {
		return nil, apperror.InvalidState("Shift has already been reviewed")
	}
	return u.Get(id)
}

func (u *ShiftUsecase) List(actor *model.Personnel, status string) ([]model.Shift, error) {
	list, err := repository.NewShiftRepository(u.db).GetAll(scopeUnit(actor), status)
	if err != nil {
		return nil, dbErr(err)
	}
	for i := range list {
		sanitizeShift(&list[i])
	}
	return list, nil
}

func (u *ShiftUsecase) Get(id uint) (*model.Shift, error) {
	shift, err := repository.NewShiftRepository(u.db).GetByID(id)
	if err != nil {
		return nil, lookupErr(err, "Shift not found")
	}
	sanitizeShift(shift)
	return shift, nil
}

func (u *ShiftUsecase) checkAssignees(ids []uint, unitID uint) error {
	if len(ids) == 0 {
		return nil
	}
	valid, err := repository.NewPersonnelRepository(u.db).ActiveIDsInUnit(ids, unitID)
	if err != nil {
		return dbErr(err)
	}
	for _, id := range ids {
		if !valid[id] {
			return apperror.Validation(fmt.Sprintf("Personnel %d not found in your unit", id))
		}
	}
	return nil
}

func validateShiftFields(start, end, effectiveDate string) error {
	if !clockPattern.MatchString(start) {
		return apperror.Validation("Start time must be in HH:MM format")
	}
	if !clockPattern.MatchString(end) {
		return apperror.Validation("End time must be in HH:MM format")
	}
	_, err := parseDate(effectiveDate, "effectiveDate")
	return err
}

func sanitizeShift(shift *model.Shift) {
	if shift.AssignedBy != nil {
		shift.AssignedBy.Sanitize()
	}
	for i := range shift.Assignees {
		if shift.Assignees[i].Personnel != nil {
			shift.Assignees[i].Personnel.Sanitize()
		}
	}
}
