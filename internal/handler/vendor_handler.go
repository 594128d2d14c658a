package handler

import (
	"hr-inventory-backend/internal/middleware"
	"hr-inventory-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type VendorHandler struct {
	usecase *usecase.VendorUsecase
}

func NewVendorHandler(uc *usecase.VendorUsecase) *VendorHandler {
	return &VendorHandler{usecase: uc}
}

func (h *VendorHandler) GetAll(c *fiber.Ctx) error {
	vendors, err := h.usecase.List(middleware.CurrentUser(c), c.QueryBool("showInactive"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, vendors, "Vendors fetched successfully")
}

func (h *VendorHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	vendor, err := h.usecase.Get(id, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, vendor, "Vendor fetched successfully")
}

func (h *VendorHandler) Create(c *fiber.Ctx) error {
	var req usecase.CreateVendorInput
	if err := bindBody(c, &req); err != nil {
		return err
	}
	vendor, err := h.usecase.Create(req, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, vendor, "Vendor created successfully")
}

func (h *VendorHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req usecase.UpdateVendorInput
	if err := bindBody(c, &req); err != nil {
		return err
	}
	vendor, err := h.usecase.Update(id, req, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, vendor, "Vendor updated successfully")
}

func (h *VendorHandler) Deactivate(c *fiber.Ctx) error {
	return h.setActive(c, false, "Vendor deactivated successfully")
}

func (h *VendorHandler) Activate(c *fiber.Ctx) error {
	return h.setActive(c, true, "Vendor activated successfully")
}

func (h *VendorHandler) setActive(c *fiber.Ctx, active bool, msg string) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	vendor, err := h.usecase.SetActive(id, active, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, vendor, msg)
}
