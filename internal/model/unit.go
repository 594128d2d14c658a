package model

import "gorm.io/gorm"

type Unit struct {
	gorm.Model
	UnitCode string `json:"unitCode" gorm:"size:32;uniqueIndex;not null"`
	Code     string `json:"code" gorm:"size:32;uniqueIndex;not null"`
	Name     string `json:"name" gorm:"size:150;not null"`
	Location string `json:"location"`
	IsActive bool   `json:"isActive" gorm:"default:true"`
}

type Vendor struct {
	gorm.Model
	Name     string `json:"name" gorm:"size:150;not null;uniqueIndex:idx_vendor_name_unit"`
	UnitID   uint   `json:"unitId" gorm:"not null;uniqueIndex:idx_vendor_name_unit"`
	Contact  string `json:"contact"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	IsActive bool   `json:"isActive" gorm:"default:true"`

	Unit *Unit `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
}
