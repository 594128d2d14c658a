package usecase

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"hr-inventory-backend/internal/apperror"
	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/rbac"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedUnit(t *testing.T, db *gorm.DB, code string) *model.Unit {
	t.Helper()
	unit := &model.Unit{UnitCode: "UNIT-" + code, Code: code, Name: "Unit " + code, IsActive: true}
	require.NoError(t, db.Create(unit).Error)
	return unit
}

func seedPersonnel(t *testing.T, db *gorm.DB, unitID uint, role rbac.Role) *model.Personnel {
	t.Helper()
	tag := uuid.NewString()[:8]
	p := &model.Personnel{
		EmployeeCode: "EMP-" + tag,
		FirstName:    string(role),
		LastName:     tag,
		Email:        tag + "@example.com",
		Role:         role,
		UnitID:       unitID,
		Status:       model.PersonnelActive,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedItem(t *testing.T, db *gorm.DB, unitID uint, stock, minLevel int) *model.Item {
	t.Helper()
	tag := uuid.NewString()[:8]
	item := &model.Item{
		ItemCode:      "ITM-" + tag,
		Name:          "Item " + tag,
		UnitID:        unitID,
		Category:      model.CategoryTools,
		UOM:           "pcs",
		CurrentStock:  stock,
		MinStockLevel: minLevel,
		IsActive:      true,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func reloadItem(t *testing.T, db *gorm.DB, id uint) model.Item {
	t.Helper()
	var item model.Item
	require.NoError(t, db.First(&item, id).Error)
	return item
}

func requireKind(t *testing.T, err error, kind apperror.Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, apperror.From(err).Kind, "unexpected error: %v", err)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type lowStockCall struct {
	item       model.Item
	recipients []model.Personnel
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []lowStockCall
}

func (n *recordingNotifier) LowStock(item model.Item, recipients []model.Personnel) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, lowStockCall{item: item, recipients: recipients})
	return nil
}

func (n *recordingNotifier) Calls() []lowStockCall {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]lowStockCall(nil), n.calls...)
}
