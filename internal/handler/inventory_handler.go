package handler

import (
	"fmt"
	"time"

	"hr-inventory-backend/internal/middleware"
	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/rbac"
	"hr-inventory-backend/internal/report"
	"hr-inventory-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// InventoryHandler serves the item catalog and the stock ledger endpoints.
type InventoryHandler struct {
	items  *usecase.ItemUsecase
	ledger *usecase.LedgerUsecase
}

func NewInventoryHandler(items *usecase.ItemUsecase, ledger *usecase.LedgerUsecase) *InventoryHandler {
	return &InventoryHandler{items: items, ledger: ledger}
}

func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var req usecase.CreateItemInput
	if err := bindBody(c, &req); err != nil {
		return err
	}
	item, err := h.items.Create(req, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, item, "Item created successfully")
}

func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req usecase.UpdateItemInput
	if err := bindBody(c, &req); err != nil {
		return err
	}
	item, err := h.items.Update(id, req, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, item, "Item updated successfully")
}

func (h *InventoryHandler) DeactivateItem(c *fiber.Ctx) error {
	return h.setItemActive(c, false, "Item deactivated successfully")
}

func (h *InventoryHandler) ActivateItem(c *fiber.Ctx) error {
	return h.setItemActive(c, true, "Item activated successfully")
}

func (h *InventoryHandler) setItemActive(c *fiber.Ctx, active bool, msg string) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	item, err := h.items.SetActive(id, active, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, item, msg)
}

func (h *InventoryHandler) StockIn(c *fiber.Ctx) error {
	var req usecase.StockInInput
	if err := bindBody(c, &req); err != nil {
		return err
	}
	user := middleware.CurrentUser(c)
	receipt, err := h.ledger.StockIn(req, user, unitScope(user))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, receipt, "Stock received successfully")
}

func (h *InventoryHandler) GetStockRequests(c *fiber.Ctx) error {
	status := c.Query("status")
	if err := validateStatus(status); err != nil {
		return err
	}

	list, err := h.ledger.ListStockRequests(unitScope(middleware.CurrentUser(c)), status)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, list, "Stock requests fetched successfully")
}

func (h *InventoryHandler) ApproveStockRequest(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	user := middleware.CurrentUser(c)
	req, err := h.ledger.ApproveStockRequest(id, user, unitScope(user))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, req, "Stock request approved, stock issued")
}

func (h *InventoryHandler) RejectStockRequest(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var body usecase.RejectStockRequestInput
	if err := bindBody(c, &body); err != nil {
		return err
	}
	user := middleware.CurrentUser(c)
	req, err := h.ledger.RejectStockRequest(id, user, unitScope(user), body.RejectionReason)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, req, "Stock request rejected")
}

func (h *InventoryHandler) StockReturn(c *fiber.Ctx) error {
	var req usecase.StockReturnInput
	if err := bindBody(c, &req); err != nil {
		return err
	}
	user := middleware.CurrentUser(c)
	ret, err := h.ledger.ProcessStockReturn(req, user, unitScope(user))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, ret, "Stock return processed successfully")
}

func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	items, err := h.ledger.GetInventory(unitScope(middleware.CurrentUser(c)))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, items, "Inventory fetched successfully")
}

func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	item, err := h.items.Get(id, unitScope(middleware.CurrentUser(c)))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, item, "Item fetched successfully")
}

func (h *InventoryHandler) GetStockHistory(c *fiber.Ctx) error {
	var q usecase.StockHistoryQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	history, err := h.ledger.GetStockHistory(unitScope(middleware.CurrentUser(c)), q)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, history, "Stock history fetched successfully")
}

func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	items, err := h.ledger.GetInventory(unitScope(middleware.CurrentUser(c)))
	if err != nil {
		return err
	}
	data, err := report.InventoryXLSX(items)
	if err != nil {
		return err
	}
	return sendXLSX(c, fmt.Sprintf("inventory_%s.xlsx", time.Now().Format("20060102")), data)
}

// StockRequestHandler is the requester side: raise a request and track it.
type StockRequestHandler struct {
	ledger *usecase.LedgerUsecase
}

func NewStockRequestHandler(ledger *usecase.LedgerUsecase) *StockRequestHandler {
	return &StockRequestHandler{ledger: ledger}
}

func (h *StockRequestHandler) Create(c *fiber.Ctx) error {
	var req usecase.StockRequestInput
	if err := bindBody(c, &req); err != nil {
		return err
	}
	user := middleware.CurrentUser(c)
	// peminta selalu terikat ke unitnya sendiri
	unitID := user.UnitID
	created, err := h.ledger.CreateStockRequest(req, user, &unitID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, created, "Stock request submitted")
}

func (h *StockRequestHandler) Mine(c *fiber.Ctx) error {
	list, err := h.ledger.MyStockRequests(middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, list, "Stock requests fetched successfully")
}

// unitScope is nil for a super admin, who may act across units.
func unitScope(user *model.Personnel) *uint {
	if user.Role == rbac.RoleSuperAdmin {
		return nil
	}
	unitID := user.UnitID
	return &unitID
}

// validateStatus accepts an empty filter or one of the review states.
func validateStatus(status string) error {
	if status == "" {
		return nil
	}
	return validateStruct(&struct {
		Status string `json:"status" validate:"oneof=pending approved rejected"`
	}{status})
}

func sendXLSX(c *fiber.Ctx, filename string, data []byte) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, report.ContentTypeXLSX)
	return c.Status(fiber.StatusOK).Send(data)
}
