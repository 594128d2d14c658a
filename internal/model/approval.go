package model

import "time"

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Approval is one review stage, embedded into the owning table with a column prefix.
type Approval struct {
	Status  ApprovalStatus `json:"status" gorm:"size:16;not null;default:pending"`
	ByID    *uint          `json:"by,omitempty"`
	At      *time.Time     `json:"at,omitempty"`
	Remarks string         `json:"remarks,omitempty"`
}

func (a Approval) IsPending() bool { return a.Status == ApprovalPending }
