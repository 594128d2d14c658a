package handler

import (
	"errors"
	"log/slog"

	"hr-inventory-backend/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
}

func respond(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(Response{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < fiber.StatusBadRequest,
	})
}

// ErrorHandler renders every error returned from a handler or middleware as the
// error envelope. Unknown errors are logged and reported as 500.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return writeError(c, fiberErr.Code, fiberErr.Message, nil)
		}

		appErr := apperror.From(err)
		if appErr.Kind == apperror.KindInternal {
			log.Error("request failed",
				"method", c.Method(),
				"path", c.Path(),
				"error", err,
			)
		}
		return writeError(c, appErr.StatusCode(), appErr.Message, appErr.Errors)
	}
}

func writeError(c *fiber.Ctx, status int, message string, details []string) error {
	if details == nil {
		details = []string{}
	}
	return c.Status(status).JSON(ErrorResponse{
		StatusCode: status,
		Success:    false,
		Message:    message,
		Errors:     details,
	})
}
