package model

import (
	"time"

	"hr-inventory-backend/internal/rbac"

	"gorm.io/gorm"
)

type PersonnelStatus string

const (
	PersonnelActive     PersonnelStatus = "active"
	PersonnelOnLeave    PersonnelStatus = "on_leave"
	PersonnelTerminated PersonnelStatus = "terminated"
	PersonnelInactive   PersonnelStatus = "inactive"
)

type Personnel struct {
	gorm.Model
	EmployeeCode string          `json:"employeeCode" gorm:"size:32;uniqueIndex;not null"`
	FirstName    string          `json:"firstName" gorm:"size:100;not null"`
	LastName     string          `json:"lastName" gorm:"size:100;not null"`
	Email        string          `json:"email" gorm:"size:191;uniqueIndex;not null"`
	Password     string          `json:"-"`
	RefreshToken string          `json:"-" gorm:"size:1024"`
	Role         rbac.Role       `json:"role" gorm:"size:32;not null;default:employee"`
	UnitID       uint            `json:"unitId" gorm:"index;not null"`
	Status       PersonnelStatus `json:"status" gorm:"size:16;not null;default:active"`
	SupervisorID *uint           `json:"supervisorId"` // Self-reference
	Phone        string          `json:"phone"`
	Gender       string          `json:"gender"`
	Designation  string          `json:"designation"`
	Department   string          `json:"department"`
	EmployeeType string          `json:"employeeType" gorm:"size:16;default:permanent"`
	JoiningDate  *time.Time      `json:"joiningDate"`

	// Relasi
	Unit           *Unit           `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
	Supervisor     *Personnel      `json:"supervisor,omitempty" gorm:"foreignKey:SupervisorID"`
	ServiceHistory []ServiceRecord `json:"serviceHistory,omitempty" gorm:"foreignKey:PersonnelID"`
}

func (p *Personnel) IsActive() bool { return p.Status == PersonnelActive }

// Sanitize drops the credential fields before a record leaves the identity store.
func (p *Personnel) Sanitize() *Personnel {
	p.Password = ""
	p.RefreshToken = ""
	return p
}

// ServiceRecord is one closed assignment in a personnel's service history.
type ServiceRecord struct {
	gorm.Model
	PersonnelID uint       `json:"personnelId" gorm:"index;not null"`
	Designation string     `json:"designation"`
	Role        rbac.Role  `json:"role" gorm:"size:32"`
	UnitID      uint       `json:"unitId"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}
