package handler

import (
	"hr-inventory-backend/internal/middleware"
	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ShiftHandler struct {
	usecase *usecase.ShiftUsecase
}

func NewShiftHandler(uc *usecase.ShiftUsecase) *ShiftHandler {
	return &ShiftHandler{usecase: uc}
}

func (h *ShiftHandler) GetAll(c *fiber.Ctx) error {
	status := c.Query("status")
	if err := validateStatus(status); err != nil {
		return err
	}

	shifts, err := h.usecase.List(middleware.CurrentUser(c), status)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, shifts, "Shifts fetched successfully")
}

func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var req usecase.CreateShiftInput
	if err := bindBody(c, &req); err != nil {
		return err
	}

	shift, err := h.usecase.Create(req, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, shift, "Shift created, pending sub_admin approval")
}

func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req usecase.UpdateShiftInput
	if err := bindBody(c, &req); err != nil {
		return err
	}

	shift, err := h.usecase.Update(id, req, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, shift, "Shift updated successfully")
}

func (h *ShiftHandler) Approve(c *fiber.Ctx) error {
	return h.review(c, h.usecase.Approve, "Shift approved")
}

func (h *ShiftHandler) Reject(c *fiber.Ctx) error {
	return h.review(c, h.usecase.Reject, "Shift rejected")
}

func (h *ShiftHandler) review(c *fiber.Ctx, action func(uint, *model.Personnel, string) (*model.Shift, error), msg string) error {
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

	shift, err := action(id, middleware.CurrentUser(c), body.Remarks)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, shift, msg)
}
