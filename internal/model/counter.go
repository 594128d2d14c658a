package model

import "gorm.io/gorm"

// Prefixes of the human-readable ids minted through Counter.
const (
	PrefixEmployee    = "EMP"
	PrefixItem        = "ITM"
	PrefixStockIn     = "RCV"
	PrefixStockOut    = "ISS"
	PrefixRequest     = "REQ"
	PrefixStockReturn = "RET"
	PrefixUnit        = "UNIT"
)

type Counter struct {
	Prefix string `gorm:"primaryKey;size:16"`
	Seq    int64  `gorm:"not null;default:0"`
}

// AutoMigrate creates or updates every table owned by the application.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Counter{},
		&Unit{},
		&Personnel{},
		&ServiceRecord{},
		&Vendor{},
		&Item{},
		&StockRequest{},
		&StockIn{},
		&StockOut{},
		&StockReturn{},
		&Attendance{},
		&Shift{},
		&ShiftAssignee{},
	)
}
