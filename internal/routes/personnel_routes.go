package routes

import (
	"hr-inventory-backend/internal/handler"
	"hr-inventory-backend/internal/middleware"
	"hr-inventory-backend/internal/rbac"
	"hr-inventory-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupPersonnelRoutes(api fiber.Router, uc *usecase.PersonnelUsecase, auth fiber.Handler, d Deps) {
	hdl := handler.NewPersonnelHandler(uc, d.CookieSecure)

	// Auth Routes
	api.Post("/personnel/signIn", hdl.SignIn)
	api.Post("/personnel/signUp", hdl.SignUp)
	api.Post("/personnel/refresh-token", hdl.RefreshToken)

	r := api.Group("/personnel", auth)
	r.Post("/logout", hdl.Logout)
	r.Get("/me", hdl.Me)
	r.Put("/me/password", hdl.ChangePassword)

	// Kelola Pegawai
	r.Post("/create", middleware.Permission(d.Authz, rbac.ResourceEmployee, rbac.ActionCreate), hdl.Create)
	view := middleware.AnyPermission(d.Authz,
		rbac.Permission{Resource: rbac.ResourceEmployee, Action: rbac.ActionView},
		rbac.Permission{Resource: rbac.ResourceEmployee, Action: rbac.ActionViewOwn},
	)
	r.Get("/", view, hdl.GetAll)
	r.Get("/:id", view, hdl.GetByID)
	r.Put("/:id", middleware.Permission(d.Authz, rbac.ResourceEmployee, rbac.ActionUpdate), hdl.Update)
}
