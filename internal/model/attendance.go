package model

import "gorm.io/gorm"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLeave   AttendanceStatus = "leave"
	AttendanceHalfDay AttendanceStatus = "half_day"
)

type Attendance struct {
	gorm.Model
	PersonnelID uint             `json:"personnelId" gorm:"not null;uniqueIndex:idx_attendance_personnel_date"`
	Date        string           `json:"date" gorm:"size:10;not null;uniqueIndex:idx_attendance_personnel_date;index"` // Format YYYY-MM-DD
	Status      AttendanceStatus `json:"status" gorm:"size:16;not null"`
	MarkedByID  uint             `json:"markedBy" gorm:"not null"`
	UnitID      uint             `json:"unitId" gorm:"index;not null"`
	Remarks     string           `json:"remarks,omitempty"`

	SubAdminApproval Approval `json:"subAdminApproval" gorm:"embedded;embeddedPrefix:sub_admin_"`
	AdminApproval    Approval `json:"adminApproval" gorm:"embedded;embeddedPrefix:admin_"`

	// Relasi untuk Preload
	Personnel *Personnel `json:"personnel,omitempty" gorm:"foreignKey:PersonnelID"`
	MarkedBy  *Personnel `json:"marker,omitempty" gorm:"foreignKey:MarkedByID"`
	Unit      *Unit      `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
}
