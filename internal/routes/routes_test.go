package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"hr-inventory-backend/internal/handler"
	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/notify"
	"hr-inventory-backend/internal/rbac"
	"hr-inventory-backend/internal/report"
	"hr-inventory-backend/internal/security"
	"hr-inventory-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "secret123"

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Errors     []string        `json:"errors"`
}

type testServer struct {
	t    *testing.T
	app  *fiber.App
	db   *gorm.DB
	unit *model.Unit
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, model.AutoMigrate(db))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ledger := usecase.NewLedgerUsecase(db, notify.Nop{Log: log}, log)
	t.Cleanup(ledger.Wait)

	app := fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler(log)})
	Setup(app, Deps{
		DB:     db,
		Authz:  rbac.NewAuthorizer(rbac.DefaultTable),
		Tokens: security.NewTokenManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour),
		Ledger: ledger,
	})

	unit := &model.Unit{UnitCode: "UNIT-HQ", Code: "HQ", Name: "Head Quarters", IsActive: true}
	require.NoError(t, db.Create(unit).Error)
	return &testServer{t: t, app: app, db: db, unit: unit}
}

// login seeds a personnel with the given role and returns an access token for it.
func (s *testServer) login(role rbac.Role) (string, *model.Personnel) {
	s.t.Helper()
	hash, err := security.HashPassword(testPassword)
	require.NoError(s.t, err)
	tag := uuid.NewString()[:8]
	p := &model.Personnel{
		EmployeeCode: "EMP-" + tag,
		FirstName:    "Test",
		LastName:     tag,
		Email:        tag + "@example.com",
		Password:     hash,
		Role:         role,
		UnitID:       s.unit.ID,
		Status:       model.PersonnelActive,
	}
	require.NoError(s.t, s.db.Create(p).Error)

	status, env := s.do("POST", "/api/personnel/signIn", "", map[string]string{"email": p.Email, "password": testPassword})
	require.Equal(s.t, fiber.StatusOK, status, env.Message)
	var auth struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &auth))
	return auth.AccessToken, p
}

func (s *testServer) raw(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(s.t, err)

	rec := httptest.NewRecorder()
	rec.Code = resp.StatusCode
	for k, v := range resp.Header {
		rec.Header()[k] = v
	}
	_, err = io.Copy(rec.Body, resp.Body)
	require.NoError(s.t, err)
	return rec
}

func (s *testServer) do(method, path, token string, body interface{}) (int, envelope) {
	s.t.Helper()
	rec := s.raw(method, path, token, body)
	var env envelope
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do("GET", "/api/health", "", nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, fiber.StatusOK, env.StatusCode)
}

func TestErrorEnvelope(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do("POST", "/api/personnel/signIn", "", map[string]string{"email": "nobody@example.com", "password": "whatever"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.False(t, env.Success)
	assert.Equal(t, "User not found", env.Message)
	assert.NotNil(t, env.Errors)

	status, env = s.do("POST", "/api/personnel/signIn", "", map[string]string{"email": "not-an-email"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "email must be a valid email address", env.Message)
	assert.Len(t, env.Errors, 2)

	status, _ = s.do("GET", "/api/inventory/inventory", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestPermissionDenied(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.login(rbac.RoleEmployee)

	status, env := s.do("POST", "/api/inventory/items", token, map[string]interface{}{
		"name": "Drill", "category": "tools", "uom": "pcs",
	})

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.False(t, env.Success)
}

func TestStockRequestFlow(t *testing.T) {
	s := newTestServer(t)
	manager, _ := s.login(rbac.RoleStoreManager)
	operator, _ := s.login(rbac.RoleInventoryOperator)
	employee, _ := s.login(rbac.RoleEmployee)

	// katalog barang
	status, env := s.do("POST", "/api/inventory/items", manager, map[string]interface{}{
		"name": "Drill", "category": "tools", "uom": "pcs", "minStockLevel": 1,
	})
	require.Equal(t, fiber.StatusCreated, status, env.Message)
	var item model.Item
	require.NoError(t, json.Unmarshal(env.Data, &item))
	assert.Equal(t, "ITM-00001", item.ItemCode)

	status, env = s.do("POST", "/api/inventory/items", manager, map[string]interface{}{"category": "tools", "uom": "pcs"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "name is required", env.Message)

	// barang masuk
	status, env = s.do("POST", "/api/inventory/stock-in", operator, map[string]interface{}{"item": item.ID, "quantity": 10})
	require.Equal(t, fiber.StatusCreated, status, env.Message)

	// permintaan dan persetujuan
	status, env = s.do("POST", "/api/stock-requests", employee, map[string]interface{}{"item": item.ID, "quantity": 4, "purpose": "site work"})
	require.Equal(t, fiber.StatusCreated, status, env.Message)
	var req model.StockRequest
	require.NoError(t, json.Unmarshal(env.Data, &req))

	status, env = s.do("GET", "/api/stock-requests/my", employee, nil)
	require.Equal(t, fiber.StatusOK, status, env.Message)
	var mine []model.StockRequest
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	assert.Len(t, mine, 1)

	status, _ = s.do("GET", "/api/inventory/stock-requests?status=bogus", operator, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env = s.do("PATCH", fmt.Sprintf("/api/inventory/stock-requests/%d/approve", req.ID), operator, nil)
	require.Equal(t, fiber.StatusOK, status, env.Message)

	status, env = s.do("PATCH", fmt.Sprintf("/api/inventory/stock-requests/%d/approve", req.ID), operator, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Request already approved", env.Message)

	status, env = s.do("GET", fmt.Sprintf("/api/inventory/inventory/%d", item.ID), employee, nil)
	require.Equal(t, fiber.StatusOK, status, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &item))
	assert.Equal(t, 6, item.CurrentStock)

	status, env = s.do("GET", "/api/inventory/stock-history?type=out", manager, nil)
	require.Equal(t, fiber.StatusOK, status, env.Message)
	var history map[string][]model.StockOut
	require.NoError(t, json.Unmarshal(env.Data, &history))
	assert.Len(t, history["stockOut"], 1)
	assert.NotContains(t, history, "stockIn")
}

func TestAttendancePartialDuplicates(t *testing.T) {
	s := newTestServer(t)
	subAdmin, _ := s.login(rbac.RoleSubAdmin)
	_, first := s.login(rbac.RoleEmployee)
	_, second := s.login(rbac.RoleEmployee)

	status, env := s.do("POST", "/api/attendance", subAdmin, map[string]interface{}{
		"records": []map[string]interface{}{{"personnel": first.ID, "date": "2024-01-01", "status": "present"}},
	})
	require.Equal(t, fiber.StatusCreated, status, env.Message)

	status, env = s.do("POST", "/api/attendance", subAdmin, map[string]interface{}{
		"records": []map[string]interface{}{
			{"personnel": first.ID, "date": "2024-01-01", "status": "absent"},
			{"personnel": second.ID, "date": "2024-01-01", "status": "present"},
		},
	})
	require.Equal(t, fiber.StatusCreated, status, env.Message)
	var partial struct {
		Records    []model.Attendance `json:"records"`
		Duplicates []string           `json:"duplicates"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &partial))
	assert.Len(t, partial.Records, 1)
	assert.Len(t, partial.Duplicates, 1)

	status, env = s.do("POST", "/api/attendance", subAdmin, map[string]interface{}{
		"records": []map[string]interface{}{{"personnel": second.ID, "date": "2024-01-01", "status": "present"}},
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Len(t, env.Errors, 1)

	status, env = s.do("PATCH", fmt.Sprintf("/api/attendance/%d/approve-admin", partial.Records[0].ID), subAdmin, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Attendance must be approved by sub_admin first", env.Message)
}

func TestExports(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.login(rbac.RoleAdmin)

	for _, path := range []string{"/api/attendance/export", "/api/inventory/export"} {
		rec := s.raw("GET", path, admin, nil)
		assert.Equal(t, fiber.StatusOK, rec.Code, path)
		assert.Equal(t, report.ContentTypeXLSX, rec.Header().Get(fiber.HeaderContentType), path)
		assert.Contains(t, rec.Header().Get(fiber.HeaderContentDisposition), ".xlsx", path)
		assert.NotZero(t, rec.Body.Len(), path)
	}
}

func TestDirectoryRoutes(t *testing.T) {
	s := newTestServer(t)
	superAdmin, _ := s.login(rbac.RoleSuperAdmin)
	manager, _ := s.login(rbac.RoleStoreManager)

	status, env := s.do("POST", "/api/units", superAdmin, map[string]interface{}{"code": "north", "name": "North Depot"})
	require.Equal(t, fiber.StatusCreated, status, env.Message)
	var unit model.Unit
	require.NoError(t, json.Unmarshal(env.Data, &unit))
	assert.Equal(t, "NORTH", unit.Code)

	status, _ = s.do("POST", "/api/units", manager, map[string]interface{}{"code": "south", "name": "South"})
	assert.Equal(t, fiber.StatusForbidden, status)

	status, env = s.do("POST", "/api/vendors", manager, map[string]interface{}{"name": "Acme"})
	require.Equal(t, fiber.StatusCreated, status, env.Message)
	var vendor model.Vendor
	require.NoError(t, json.Unmarshal(env.Data, &vendor))

	status, env = s.do("PATCH", fmt.Sprintf("/api/vendors/%d/deactivate", vendor.ID), manager, nil)
	require.Equal(t, fiber.StatusOK, status, env.Message)

	status, env = s.do("GET", "/api/vendors", manager, nil)
	require.Equal(t, fiber.StatusOK, status)
	var active []model.Vendor
	require.NoError(t, json.Unmarshal(env.Data, &active))
	assert.Empty(t, active)
}
