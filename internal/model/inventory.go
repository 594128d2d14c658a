package model

import (
	"time"

	"gorm.io/gorm"
)

type ItemCategory string

const (
	CategoryTools       ItemCategory = "tools"
	CategorySpareParts  ItemCategory = "spare_parts"
	CategoryConsumables ItemCategory = "consumables"
	CategoryEquipment   ItemCategory = "equipment"
	CategoryFurniture   ItemCategory = "furniture"
	CategoryStationery  ItemCategory = "stationery"
)

type Item struct {
	gorm.Model
	ItemCode      string       `json:"itemCode" gorm:"size:32;uniqueIndex;not null"`
	Name          string       `json:"name" gorm:"size:150;not null;uniqueIndex:idx_item_name_unit"`
	UnitID        uint         `json:"unitId" gorm:"not null;uniqueIndex:idx_item_name_unit"`
	Category      ItemCategory `json:"category" gorm:"size:32;not null"`
	UOM           string       `json:"uom" gorm:"size:32;not null"`
	CurrentStock  int          `json:"currentStock" gorm:"not null;default:0"`
	MinStockLevel int          `json:"minStockLevel" gorm:"not null;default:0"`
	IsActive      bool         `json:"isActive" gorm:"default:true"`

	Unit *Unit `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
}

// LowStock reports whether the item sits at or under its reorder threshold.
func (i *Item) LowStock() bool {
	return i.MinStockLevel > 0 && i.CurrentStock <= i.MinStockLevel
}

type StockRequestStatus string

const (
	StockRequestPending  StockRequestStatus = "pending"
	StockRequestApproved StockRequestStatus = "approved"
	StockRequestRejected StockRequestStatus = "rejected"
)

type StockRequest struct {
	gorm.Model
	RequestCode     string             `json:"requestCode" gorm:"size:32;uniqueIndex;not null"`
	ItemID          uint               `json:"itemId" gorm:"index;not null"`
	Quantity        int                `json:"quantity" gorm:"not null"`
	Purpose         string             `json:"purpose" gorm:"not null"`
	RequestedByID   uint               `json:"requestedBy" gorm:"index;not null"`
	UnitID          uint               `json:"unitId" gorm:"index;not null"`
	Status          StockRequestStatus `json:"status" gorm:"size:16;not null;default:pending"`
	ReviewedByID    *uint              `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time         `json:"reviewedAt,omitempty"`
	RejectionReason string             `json:"rejectionReason,omitempty"`
	Remarks         string             `json:"remarks,omitempty"`

	Item        *Item      `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	RequestedBy *Personnel `json:"requester,omitempty" gorm:"foreignKey:RequestedByID"`
	ReviewedBy  *Personnel `json:"reviewer,omitempty" gorm:"foreignKey:ReviewedByID"`
}

type StockIn struct {
	gorm.Model
	ReceiptCode  string `json:"receiptCode" gorm:"size:32;uniqueIndex;not null"`
	ItemID       uint   `json:"itemId" gorm:"index;not null"`
	Quantity     int    `json:"quantity" gorm:"not null"`
	VendorID     *uint  `json:"vendorId,omitempty"`
	ReceivedByID uint   `json:"receivedBy" gorm:"not null"`
	UnitID       uint   `json:"unitId" gorm:"index;not null"`
	Remarks      string `json:"remarks,omitempty"`

	Item       *Item      `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	Vendor     *Vendor    `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	ReceivedBy *Personnel `json:"receiver,omitempty" gorm:"foreignKey:ReceivedByID"`
}

type StockOut struct {
	gorm.Model
	ReceiptCode    string `json:"receiptCode" gorm:"size:32;uniqueIndex;not null"`
	ItemID         uint   `json:"itemId" gorm:"index;not null"`
	Quantity       int    `json:"quantity" gorm:"not null"`
	Purpose        string `json:"purpose" gorm:"not null"`
	IssuedToID     uint   `json:"issuedTo" gorm:"not null"`
	IssuedByID     uint   `json:"issuedBy" gorm:"not null"`
	StockRequestID *uint  `json:"stockRequestId,omitempty" gorm:"uniqueIndex"`
	UnitID         uint   `json:"unitId" gorm:"index;not null"`
	Remarks        string `json:"remarks,omitempty"`

	Item     *Item      `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	IssuedTo *Personnel `json:"recipient,omitempty" gorm:"foreignKey:IssuedToID"`
	IssuedBy *Personnel `json:"issuer,omitempty" gorm:"foreignKey:IssuedByID"`
}

type ReturnReason string

const (
	ReturnDamaged ReturnReason = "damaged"
	ReturnExcess  ReturnReason = "excess"
)

type StockReturn struct {
	gorm.Model
	ReturnCode   string       `json:"returnCode" gorm:"size:32;uniqueIndex;not null"`
	ItemID       uint         `json:"itemId" gorm:"index;not null"`
	Quantity     int          `json:"quantity" gorm:"not null"`
	ReturnedByID uint         `json:"returnedBy" gorm:"not null"`
	ReceivedByID uint         `json:"receivedBy" gorm:"not null"`
	ReturnReason ReturnReason `json:"returnReason" gorm:"size:16;not null"`
	UnitID       uint         `json:"unitId" gorm:"index;not null"`
	Remarks      string       `json:"remarks,omitempty"`

	Item       *Item      `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	ReturnedBy *Personnel `json:"returner,omitempty" gorm:"foreignKey:ReturnedByID"`
	ReceivedBy *Personnel `json:"receiver,omitempty" gorm:"foreignKey:ReceivedByID"`
}
