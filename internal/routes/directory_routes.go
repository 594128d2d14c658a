package routes

import (
	"hr-inventory-backend/internal/handler"
	"hr-inventory-backend/internal/middleware"
	"hr-inventory-backend/internal/rbac"
	"hr-inventory-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// directoryHandler is the shape shared by the unit and vendor handlers.
type directoryHandler interface {
	GetAll(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Deactivate(c *fiber.Ctx) error
	Activate(c *fiber.Ctx) error
}

func SetupUnitRoutes(api fiber.Router, auth fiber.Handler, d Deps) {
	hdl := handler.NewUnitHandler(usecase.NewUnitUsecase(d.DB))
	mountDirectory(api.Group("/units", auth), d.Authz, rbac.ResourceUnit, hdl)
}

func SetupVendorRoutes(api fiber.Router, auth fiber.Handler, d Deps) {
	hdl := handler.NewVendorHandler(usecase.NewVendorUsecase(d.DB))
	mountDirectory(api.Group("/vendors", auth), d.Authz, rbac.ResourceVendor, hdl)
}

func mountDirectory(r fiber.Router, authz *rbac.Authorizer, res rbac.Resource, hdl directoryHandler) {
	r.Get("/", middleware.Permission(authz, res, rbac.ActionView), hdl.GetAll)
	r.Get("/:id", middleware.Permission(authz, res, rbac.ActionView), hdl.GetByID)
	r.Post("/", middleware.Permission(authz, res, rbac.ActionCreate), hdl.Create)
	r.Put("/:id", middleware.Permission(authz, res, rbac.ActionUpdate), hdl.Update)
	r.Patch("/:id/deactivate", middleware.Permission(authz, res, rbac.ActionDeactivate), hdl.Deactivate)
	r.Patch("/:id/activate", middleware.Permission(authz, res, rbac.ActionActivate), hdl.Activate)
}
