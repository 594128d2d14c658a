package routes

import (
	"hr-inventory-backend/internal/handler"
	"hr-inventory-backend/internal/middleware"
	"hr-inventory-backend/internal/rbac"
	"hr-inventory-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(api fiber.Router, auth fiber.Handler, d Deps) {
	hdl := handler.NewAttendanceHandler(usecase.NewAttendanceUsecase(d.DB))

	r := api.Group("/attendance", auth)
	view := middleware.Permission(d.Authz, rbac.ResourceAttendance, rbac.ActionView)
	approve := middleware.Permission(d.Authz, rbac.ResourceAttendance, rbac.ActionApprove)

	r.Post("/", middleware.Permission(d.Authz, rbac.ResourceAttendance, rbac.ActionCreate), hdl.Mark)
	r.Get("/", view, hdl.GetAll)
	r.Get("/export", view, hdl.Export)

	// Approval dua tingkat: sub_admin dulu, baru admin
	r.Patch("/:id/approve-sub-admin", approve, hdl.ApproveBySubAdmin)
	r.Patch("/:id/reject-sub-admin", approve, hdl.RejectBySubAdmin)
	r.Patch("/:id/approve-admin", approve, hdl.ApproveByAdmin)
	r.Patch("/:id/reject-admin", approve, hdl.RejectByAdmin)
}
