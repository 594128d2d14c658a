package usecase

import (
	"testing"

	"hr-inventory-backend/internal/apperror"
	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/rbac"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_CreateStartsEmptyAndActive(t *testing.T) {
	db := newTestDB(t)
	unit := seedUnit(t, db, "U1")
	manager := seedPersonnel(t, db, unit.ID, rbac.RoleStoreManager)
	uc := NewItemUsecase(db)

	item, err := uc.Create(CreateItemInput{Name: " Drill ", Category: model.CategoryTools, UOM: "pcs", MinStockLevel: 2}, manager)
	require.NoError(t, err)
	assert.Equal(t, "ITM-00001", item.ItemCode)
	assert.Equal(t, "Drill", item.Name)
	assert.Equal(t, 0, item.CurrentStock)
	assert.True(t, item.IsActive)
	assert.Equal(t, unit.ID, item.UnitID)

	_, err = uc.Create(CreateItemInput{Name: "Drill", Category: model.CategoryTools, UOM: "pcs"}, manager)
	requireKind(t, err, apperror.KindConflict)
}

func TestItem_UpdateAndToggle(t *testing.T) {
	db := newTestDB(t)
	unit := seedUnit(t, db, "U1")
	manager := seedPersonnel(t, db, unit.ID, rbac.RoleStoreManager)
	uc := NewItemUsecase(db)

	drill, err := uc.Create(CreateItemInput{Name: "Drill", Category: model.CategoryTools, UOM: "pcs"}, manager)
	require.NoError(t, err)
	_, err = uc.Create(CreateItemInput{Name: "Saw", Category: model.CategoryTools, UOM: "pcs"}, manager)
	require.NoError(t, err)

	taken := "Saw"
	_, err = uc.Update(drill.ID, UpdateItemInput{Name: &taken}, manager)
	requireKind(t, err, apperror.KindConflict)

	level := 8
	updated, err := uc.Update(drill.ID, UpdateItemInput{MinStockLevel: &level}, manager)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.MinStockLevel)

	off, err := uc.SetActive(drill.ID, false, manager)
	require.NoError(t, err)
	assert.False(t, off.IsActive)
	on, err := uc.SetActive(drill.ID, true, manager)
	require.NoError(t, err)
	assert.True(t, on.IsActive)
}

func TestItem_GetOutsideUnit(t *testing.T) {
	db := newTestDB(t)
	unit := seedUnit(t, db, "U1")
	other := seedUnit(t, db, "U2")
	item := seedItem(t, db, unit.ID, 1, 0)
	uc := NewItemUsecase(db)

	_, err := uc.Get(item.ID, &other.ID)
	requireKind(t, err, apperror.KindForbidden)

	got, err := uc.Get(item.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, item.ItemCode, got.ItemCode)
}
