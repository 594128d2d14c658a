package routes

import (
	"hr-inventory-backend/internal/handler"
	"hr-inventory-backend/internal/middleware"
	"hr-inventory-backend/internal/rbac"
	"hr-inventory-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupInventoryRoutes(api fiber.Router, auth fiber.Handler, d Deps) {
	hdl := handler.NewInventoryHandler(usecase.NewItemUsecase(d.DB), d.Ledger)
	perm := func(res rbac.Resource, act rbac.Action) fiber.Handler {
		return middleware.Permission(d.Authz, res, act)
	}

	r := api.Group("/inventory", auth)

	// Master barang
	r.Post("/items", perm(rbac.ResourceItem, rbac.ActionCreate), hdl.CreateItem)
	r.Put("/items/:id", perm(rbac.ResourceItem, rbac.ActionUpdate), hdl.UpdateItem)
	r.Patch("/items/:id/deactivate", perm(rbac.ResourceItem, rbac.ActionDeactivate), hdl.DeactivateItem)
	r.Patch("/items/:id/activate", perm(rbac.ResourceItem, rbac.ActionActivate), hdl.ActivateItem)

	// Mutasi stok
	r.Post("/stock-in", perm(rbac.ResourceStockIn, rbac.ActionCreate), hdl.StockIn)
	r.Get("/stock-requests", perm(rbac.ResourceStockRequest, rbac.ActionApprove), hdl.GetStockRequests)
	r.Patch("/stock-requests/:id/approve", perm(rbac.ResourceStockRequest, rbac.ActionApprove), hdl.ApproveStockRequest)
	r.Patch("/stock-requests/:id/reject", perm(rbac.ResourceStockRequest, rbac.ActionReject), hdl.RejectStockRequest)
	r.Post("/stock-returns", perm(rbac.ResourceStockReturn, rbac.ActionCreate), hdl.StockReturn)

	// Laporan
	view := perm(rbac.ResourceItem, rbac.ActionView)
	r.Get("/inventory", view, hdl.GetInventory)
	r.Get("/inventory/:id", view, hdl.GetItem)
	r.Get("/stock-history", view, hdl.GetStockHistory)
	r.Get("/export", view, hdl.Export)
}

func SetupStockRequestRoutes(api fiber.Router, auth fiber.Handler, d Deps) {
	hdl := handler.NewStockRequestHandler(d.Ledger)

	r := api.Group("/stock-requests", auth, middleware.Permission(d.Authz, rbac.ResourceStockRequest, rbac.ActionCreate))
	r.Post("/", hdl.Create)
	r.Get("/my", hdl.Mine)
}
