package middleware

import (
	"hr-inventory-backend/internal/apperror"
	"hr-inventory-backend/internal/rbac"

	"github.com/gofiber/fiber/v2"
)

// Permission must run after Auth.
func Permission(authz *rbac.Authorizer, resource rbac.Resource, action rbac.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return apperror.Unauthenticated("Unauthorized request")
		}
		if err := authz.Authorize(user.Role, resource, action); err != nil {
			return err
		}
		return c.Next()
	}
}

// AnyPermission passes when at least one of the pairs is granted.
func AnyPermission(authz *rbac.Authorizer, perms ...rbac.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return apperror.Unauthenticated("Unauthorized request")
		}
		if err := authz.AuthorizeAny(user.Role, perms...); err != nil {
			return err
		}
		return c.Next()
	}
}
