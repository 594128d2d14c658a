package routes

import (
	"hr-inventory-backend/internal/handler"
	"hr-inventory-backend/internal/middleware"
	"hr-inventory-backend/internal/rbac"
	"hr-inventory-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupShiftRoutes(api fiber.Router, auth fiber.Handler, d Deps) {
	hdl := handler.NewShiftHandler(usecase.NewShiftUsecase(d.DB))

	r := api.Group("/shifts", auth)
	approve := middleware.Permission(d.Authz, rbac.ResourceShift, rbac.ActionApprove)

	r.Get("/", middleware.Permission(d.Authz, rbac.ResourceShift, rbac.ActionView), hdl.GetAll)
	r.Post("/", middleware.Permission(d.Authz, rbac.ResourceShift, rbac.ActionCreate), hdl.Create)
	r.Put("/:id", middleware.Permission(d.Authz, rbac.ResourceShift, rbac.ActionUpdate), hdl.Update)
	r.Patch("/:id/approve", approve, hdl.Approve)
	r.Patch("/:id/reject", approve, hdl.Reject)
}
