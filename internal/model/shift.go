package model

import "gorm.io/gorm"

type Shift struct {
	gorm.Model
	Name          string `json:"name" gorm:"size:100;not null"`
	StartTime     string `json:"startTime" gorm:"size:5;not null"` // "08:00"
	EndTime       string `json:"endTime" gorm:"size:5;not null"`   // "16:00"
	EffectiveDate string `json:"effectiveDate" gorm:"size:10;not null"`
	AssignedByID  uint   `json:"assignedBy" gorm:"not null"`
	UnitID        uint   `json:"unitId" gorm:"index;not null"`
	Remarks       string `json:"remarks,omitempty"`

	Approval Approval `json:"approval" gorm:"embedded;embeddedPrefix:approval_"`

	// Relasi
	Assignees  []ShiftAssignee `json:"assignees" gorm:"foreignKey:ShiftID"`
	AssignedBy *Personnel      `json:"creator,omitempty" gorm:"foreignKey:AssignedByID"`
	Unit       *Unit           `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
}

// AssigneeIDs returns the personnel ids assigned to the shift in stored order.
func (s *Shift) AssigneeIDs() []uint {
	ids := make([]uint, 0, len(s.Assignees))
	for _, a := range s.Assignees {
		ids = append(ids, a.PersonnelID)
	}
	return ids
}

// ShiftAssignee links a shift to one personnel record by id.
type ShiftAssignee struct {
	ShiftID     uint `json:"shiftId" gorm:"primaryKey;autoIncrement:false"`
	PersonnelID uint `json:"personnelId" gorm:"primaryKey;autoIncrement:false"`

	Personnel *Personnel `json:"personnel,omitempty" gorm:"foreignKey:PersonnelID"`
}
