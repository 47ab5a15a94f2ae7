package models

import "time"

// Leave request kinds.
const (
	LeaveVacation  = "vacation"
	LeaveRol       = "rol"
	LeaveSickLeave = "sick_leave"
)

// Leave request statuses. Pending is initial; approved/rejected are terminal.
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

type LeaveRequest struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	OrgID    uint   `json:"org_id" gorm:"index;not null"`
	WorkerID uint   `json:"worker_id" gorm:"index;not null"`
	Kind     string `json:"kind" gorm:"size:20;not null"` // vacation | rol | sick_leave
	// DateFrom/DateTo are set for vacation and sick_leave, empty for rol.
	DateFrom string  `json:"date_from" gorm:"size:10"` // YYYY-MM-DD
	DateTo   string  `json:"date_to" gorm:"size:10"`   // YYYY-MM-DD
	Hours    float64 `json:"hours" gorm:"not null"`
	Reason   string  `json:"reason" gorm:"type:text"`
	// CertificateRef is the opaque storage key of the medical certificate,
	// required for sick_leave.
	CertificateRef string     `json:"certificate_ref" gorm:"size:80"`
	Status         string     `json:"status" gorm:"size:20;not null;index"`
	ReviewerID     *uint      `json:"reviewer_id"`
	ReviewedAt     *time.Time `json:"reviewed_at"`
	SubmittedAt    time.Time  `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
