package routes

import (
	"hr-inventory-backend/internal/handler"
	"hr-inventory-backend/internal/middleware"
	"hr-inventory-backend/internal/rbac"
	"hr-inventory-backend/internal/security"
	"hr-inventory-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Deps carries the shared services every route group is built from.
type Deps struct {
	DB           *gorm.DB
	Authz        *rbac.Authorizer
	Tokens       *security.TokenManager
	Ledger       *usecase.LedgerUsecase
	CookieSecure bool
}

// Setup mounts every route group under /api.
func Setup(app *fiber.App, d Deps) {
	personnelUC := usecase.NewPersonnelUsecase(d.DB, d.Tokens, d.Authz)
	auth := middleware.Auth(personnelUC)

	api := app.Group("/api")
	api.Get("/health", handler.NewHealthHandler(d.DB).Check)

	SetupPersonnelRoutes(api, personnelUC, auth, d)
	SetupAttendanceRoutes(api, auth, d)
	SetupShiftRoutes(api, auth, d)
	SetupInventoryRoutes(api, auth, d)
	SetupStockRequestRoutes(api, auth, d)
	SetupUnitRoutes(api, auth, d)
	SetupVendorRoutes(api, auth, d)
}
