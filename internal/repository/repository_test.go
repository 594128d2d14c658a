package repository

import (
	"fmt"
	"sync"
	"testing"

	"hr-inventory-backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
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

func TestCounter_MintIsSequentialPerPrefix(t *testing.T) {
	repo := NewCounterRepository(newTestDB(t))

	first, err := repo.Mint(model.PrefixItem)
	require.NoError(t, err)
	second, err := repo.Mint(model.PrefixItem)
	require.NoError(t, err)
	other, err := repo.Mint(model.PrefixStockIn)
	require.NoError(t, err)

	assert.Equal(t, "ITM-00001", first)
	assert.Equal(t, "ITM-00002", second)
	assert.Equal(t, "RCV-00001", other)
}

func TestCounter_ConcurrentMintsAreUnique(t *testing.T) {
	repo := NewCounterRepository(newTestDB(t))

	const n = 20
	codes := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := repo.Mint(model.PrefixRequest)
			assert.NoError(t, err)
			codes <- code
		}()
	}
	wg.Wait()
	close(codes)

	seen := map[string]bool{}
	for code := range codes {
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
	assert.Len(t, seen, n)
}

func TestItem_DecrementStockNeverGoesNegative(t *testing.T) {
	db := newTestDB(t)
	item := &model.Item{ItemCode: "ITM-00001", Name: "Bolt", UnitID: 1, Category: model.CategorySpareParts, UOM: "pcs", CurrentStock: 5, IsActive: true}
	require.NoError(t, db.Create(item).Error)
	repo := NewItemRepository(db)

	ok, err := repo.DecrementStock(item.ID, 6)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.DecrementStock(item.ID, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.IncrementStock(item.ID, 2))
	got, err := repo.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentStock)
}

func TestAttendance_CreateIfAbsent(t *testing.T) {
	repo := NewAttendanceRepository(newTestDB(t))
	rec := func() *model.Attendance {
		return &model.Attendance{
			PersonnelID:      7,
			Date:             "2024-01-01",
			Status:           model.AttendancePresent,
			MarkedByID:       1,
			UnitID:           1,
			SubAdminApproval: model.Approval{Status: model.ApprovalPending},
			AdminApproval:    model.Approval{Status: model.ApprovalPending},
		}
	}

	inserted, err := repo.CreateIfAbsent(rec())
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.CreateIfAbsent(rec())
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestStockRequest_ReviewOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	req := &model.StockRequest{RequestCode: "REQ-00001", ItemID: 1, Quantity: 1, Purpose: "x", RequestedByID: 1, UnitID: 1, Status: model.StockRequestPending}
	require.NoError(t, db.Create(req).Error)
	repo := NewStockRequestRepository(db)

	ok, err := repo.MarkRejected(req.ID, 2, "no", req.CreatedAt)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkApproved(req.ID, 2, req.CreatedAt)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsDuplicate(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&model.Unit{UnitCode: "UNIT-00001", Code: "HQ", Name: "HQ"}).Error)

	err := NewUnitRepository(db).Create(&model.Unit{UnitCode: "UNIT-00002", Code: "HQ", Name: "Again"})
	assert.True(t, IsDuplicate(err))

	_, err = NewUnitRepository(db).GetByID(404)
	assert.True(t, IsNotFound(err))
}
