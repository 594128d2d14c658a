package handler

import (
	"fmt"
	"time"

	"hr-inventory-backend/internal/apperror"
	"hr-inventory-backend/internal/middleware"
	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/report"
	"hr-inventory-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	usecase *usecase.AttendanceUsecase
}

func NewAttendanceHandler(uc *usecase.AttendanceUsecase) *AttendanceHandler {
	return &AttendanceHandler{usecase: uc}
}

// Mark answers 201 when at least one record was written. Skipped duplicates are
// reported next to the written records; a batch of only duplicates is a 400.
func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	var req usecase.MarkAttendanceInput
	if err := bindBody(c, &req); err != nil {
		return err
	}

	created, err := h.usecase.Mark(req.Records, middleware.CurrentUser(c))
	if err != nil {
		if !apperror.Is(err, apperror.KindConflict) || len(created) == 0 {
			return err
		}
		dup := apperror.From(err)
		return respond(c, fiber.StatusCreated, fiber.Map{
			"records":    created,
			"duplicates": dup.Errors,
		}, fmt.Sprintf("%d attendance record(s) marked, %d duplicate(s) skipped", len(created), len(dup.Errors)))
	}
	return respond(c, fiber.StatusCreated, created, "Attendance marked successfully")
}

func (h *AttendanceHandler) GetAll(c *fiber.Ctx) error {
	var q usecase.AttendanceQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	list, err := h.usecase.List(middleware.CurrentUser(c), q)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, list, "Attendance fetched successfully")
}

func (h *AttendanceHandler) Export(c *fiber.Ctx) error {
	var q usecase.AttendanceQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	list, err := h.usecase.List(middleware.CurrentUser(c), q)
	if err != nil {
		return err
	}
	data, err := report.AttendanceXLSX(list)
	if err != nil {
		return err
	}
	return sendXLSX(c, fmt.Sprintf("attendance_%s.xlsx", time.Now().Format("20060102")), data)
}

func (h *AttendanceHandler) ApproveBySubAdmin(c *fiber.Ctx) error {
	return h.review(c, h.usecase.ApproveBySubAdmin, "Attendance approved by sub_admin")
}

func (h *AttendanceHandler) RejectBySubAdmin(c *fiber.Ctx) error {
	return h.review(c, h.usecase.RejectBySubAdmin, "Attendance rejected by sub_admin")
}

func (h *AttendanceHandler) ApproveByAdmin(c *fiber.Ctx) error {
	return h.review(c, h.usecase.ApproveByAdmin, "Attendance approved by admin")
}

func (h *AttendanceHandler) RejectByAdmin(c *fiber.Ctx) error {
	return h.review(c, h.usecase.RejectByAdmin, "Attendance rejected by admin")
}

type attendanceReview func(id uint, approver *model.Personnel, remarks string) (*model.Attendance, error)

func (h *AttendanceHandler) review(c *fiber.Ctx, action attendanceReview, msg string) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var body usecase.ReviewInput
	if len(c.Body()) > 0 {
		if err := bindBody(c, &body); err != nil {
			return err
		}
	}

	rec, err := action(id, middleware.CurrentUser(c), body.Remarks)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, rec, msg)
}
