package middleware

import (
	"strings"

	"hr-inventory-backend/internal/apperror"
	"hr-inventory-backend/internal/model"

	"github.com/gofiber/fiber/v2"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"

	userKey = "user"
)

// Authenticator resolves an access token to an active personnel record.
type Authenticator interface {
	Authenticate(accessToken string) (*model.Personnel, error)
}

func Auth(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Ambil token dari cookie, lalu dari header Authorization
		token := c.Cookies(AccessTokenCookie)
		if token == "" {
			authHeader := c.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			}
		}
		if token == "" {
			return apperror.Unauthenticated("Unauthorized request")
		}

		// 2. Validasi token dan ambil personnel yang masih aktif
		user, err := auth.Authenticate(token)
		if err != nil {
			return err
		}

		// 3. Simpan personnel ke Context agar bisa dipakai di Handler
		c.Locals(userKey, user)
		return c.Next()
	}
}

// CurrentUser returns the personnel stored by Auth.
func CurrentUser(c *fiber.Ctx) *model.Personnel {
	user, _ := c.Locals(userKey).(*model.Personnel)
	return user
}
