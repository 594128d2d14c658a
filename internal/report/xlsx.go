// Package report renders attendance and inventory listings as xlsx workbooks.
package report

import (
	"strings"

	"hr-inventory-backend/internal/model"

	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func AttendanceXLSX(records []model.Attendance) ([]byte, error) {
	header := []string{"Date", "Employee Code", "Name", "Status", "Sub Admin Approval", "Admin Approval", "Remarks"}
	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		code, name := "", ""
		if rec.Personnel != nil {
			code = rec.Personnel.EmployeeCode
			name = strings.TrimSpace(rec.Personnel.FirstName + " " + rec.Personnel.LastName)
		}
		rows = append(rows, []any{
			rec.Date,
			code,
			name,
			string(rec.Status),
			string(rec.SubAdminApproval.Status),
			string(rec.AdminApproval.Status),
			rec.Remarks,
		})
	}
	return writeSheet("Attendance", header, rows, []float64{12, 16, 28, 12, 20, 18, 30})
}

func InventoryXLSX(items []model.Item) ([]byte, error) {
	header := []string{"Item Code", "Name", "Category", "UOM", "Current Stock", "Min Stock Level", "Low Stock"}
	rows := make([][]any, 0, len(items))
	for i := range items {
		item := &items[i]
		low := ""
		if item.LowStock() {
			low = "YES"
		}
		rows = append(rows, []any{
			item.ItemCode,
			item.Name,
			string(item.Category),
			item.UOM,
			item.CurrentStock,
			item.MinStockLevel,
			low,
		})
	}
	return writeSheet("Inventory", header, rows, []float64{14, 30, 16, 10, 14, 16, 10})
}

func writeSheet(sheet string, header []string, rows [][]any, widths []float64) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return nil, err
		}
	}
	for r, values := range rows {
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	for c, w := range widths {
		col, _ := excelize.ColumnNumberToName(c + 1)
		_ = f.SetColWidth(sheet, col, col, w)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		_ = f.SetCellStyle(sheet, "A1", last, style)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
