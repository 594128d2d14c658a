package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-inventory-backend/internal/apperror"
	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/rbac"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator map[string]*model.Personnel

func (s stubAuthenticator) Authenticate(token string) (*model.Personnel, error) {
	if p, ok := s[token]; ok {
		return p, nil
	}
	return nil, apperror.Unauthenticated("Invalid access token")
}

func newTestApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var appErr *apperror.Error
			if errors.As(err, &appErr) {
				return c.Status(appErr.StatusCode()).SendString(appErr.Message)
			}
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
	})
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString(CurrentUser(c).Email)
	})
	app.Get("/", handlers...)
	return app
}

func TestAuth(t *testing.T) {
	auth := stubAuthenticator{"good": {Email: "a@example.com", Role: rbac.RoleEmployee}}
	app := newTestApp(Auth(auth))

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{"no token", func(r *http.Request) {}, fiber.StatusUnauthorized},
		{"bearer header", func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, fiber.StatusOK},
		{"cookie", func(r *http.Request) { r.Header.Set("Cookie", AccessTokenCookie+"=good") }, fiber.StatusOK},
		{"bad token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") }, fiber.StatusUnauthorized},
		{"wrong scheme", func(r *http.Request) { r.Header.Set("Authorization", "Basic good") }, fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			tt.setup(req)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestPermission(t *testing.T) {
	authz := rbac.NewAuthorizer(rbac.Table{
		rbac.RoleStoreManager: {rbac.ResourceItem: {rbac.ActionCreate}},
	})
	auth := stubAuthenticator{
		"manager":  {Email: "m@example.com", Role: rbac.RoleStoreManager},
		"employee": {Email: "e@example.com", Role: rbac.RoleEmployee},
	}
	app := newTestApp(Auth(auth), Permission(authz, rbac.ResourceItem, rbac.ActionCreate))

	for token, status := range map[string]int{"manager": fiber.StatusOK, "employee": fiber.StatusForbidden} {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, status, resp.StatusCode, token)
	}
}

func TestPermission_WithoutAuth(t *testing.T) {
	authz := rbac.NewAuthorizer(rbac.DefaultTable)
	app := newTestApp(Permission(authz, rbac.ResourceItem, rbac.ActionView))

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAnyPermission(t *testing.T) {
	authz := rbac.NewAuthorizer(rbac.DefaultTable)
	auth := stubAuthenticator{
		"employee": {Email: "e@example.com", Role: rbac.RoleEmployee},
		"operator": {Email: "o@example.com", Role: rbac.RoleInventoryOperator},
	}
	app := newTestApp(Auth(auth), AnyPermission(authz,
		rbac.Permission{Resource: rbac.ResourceEmployee, Action: rbac.ActionView},
		rbac.Permission{Resource: rbac.ResourceEmployee, Action: rbac.ActionViewOwn},
	))

	for token, status := range map[string]int{"employee": fiber.StatusOK, "operator": fiber.StatusForbidden} {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, status, resp.StatusCode, token)
	}
}
