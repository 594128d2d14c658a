package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.UserContext())
	}
	if err != nil {
		return writeError(c, fiber.StatusServiceUnavailable, "Database unreachable", nil)
	}
	return respond(c, fiber.StatusOK, fiber.Map{"status": "ok"}, "Service is healthy")
}
