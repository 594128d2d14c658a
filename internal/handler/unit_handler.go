package handler

import (
	"hr-inventory-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UnitHandler struct {
	usecase *usecase.UnitUsecase
}

func NewUnitHandler(uc *usecase.UnitUsecase) *UnitHandler {
	return &UnitHandler{usecase: uc}
}

func (h *UnitHandler) GetAll(c *fiber.Ctx) error {
	units, err := h.usecase.List(c.QueryBool("showInactive"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, units, "Units fetched successfully")
}

func (h *UnitHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	unit, err := h.usecase.Get(id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, unit, "Unit fetched successfully")
}

func (h *UnitHandler) Create(c *fiber.Ctx) error {
	var req usecase.CreateUnitInput
	if err := bindBody(c, &req); err != nil {
		return err
	}
	unit, err := h.usecase.Create(req)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, unit, "Unit created successfully")
}

func (h *UnitHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req usecase.UpdateUnitInput
	if err := bindBody(c, &req); err != nil {
		return err
	}
	unit, err := h.usecase.Update(id, req)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, unit, "Unit updated successfully")
}

func (h *UnitHandler) Deactivate(c *fiber.Ctx) error {
	return h.setActive(c, false, "Unit deactivated successfully")
}

func (h *UnitHandler) Activate(c *fiber.Ctx) error {
	return h.setActive(c, true, "Unit activated successfully")
}

func (h *UnitHandler) setActive(c *fiber.Ctx, active bool, msg string) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	unit, err := h.usecase.SetActive(id, active)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, unit, msg)
}
