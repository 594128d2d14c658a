package report

import (
	"bytes"
	"testing"

	"hr-inventory-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestInventoryXLSX(t *testing.T) {
	items := []model.Item{
		{ItemCode: "ITM-00001", Name: "Bolt", Category: model.CategorySpareParts, UOM: "pcs", CurrentStock: 3, MinStockLevel: 5},
		{ItemCode: "ITM-00002", Name: "Wrench", Category: model.CategoryTools, UOM: "pcs", CurrentStock: 10, MinStockLevel: 2},
	}

	data, err := InventoryXLSX(items)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Inventory"}, f.GetSheetList())
	rows, err := f.GetRows("Inventory")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Item Code", rows[0][0])
	assert.Equal(t, []string{"ITM-00001", "Bolt", "spare_parts", "pcs", "3", "5", "YES"}, rows[1])
	assert.Equal(t, "Wrench", rows[2][1])
	assert.Equal(t, "10", rows[2][4])
}

func TestAttendanceXLSX(t *testing.T) {
	records := []model.Attendance{
		{
			Date:             "2024-03-01",
			Status:           model.AttendancePresent,
			Personnel:        &model.Personnel{EmployeeCode: "EMP-00002", FirstName: "Asha", LastName: "Rao"},
			SubAdminApproval: model.Approval{Status: model.ApprovalApproved},
			AdminApproval:    model.Approval{Status: model.ApprovalPending},
			Remarks:          "on time",
		},
	}

	data, err := AttendanceXLSX(records)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2024-03-01", "EMP-00002", "Asha Rao", "present", "approved", "pending", "on time"}, rows[1])
}
