package models

import "time"

// LeaveBalance holds the remaining vacation and ROL hours of one worker.
// At most one row per worker per organization. Hours are kept non-negative
// by the conditional debit in the leave package, not by a DB constraint.
type LeaveBalance struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	OrgID         uint      `json:"org_id" gorm:"not null;uniqueIndex:idx_balance_worker_org"`
	WorkerID      uint      `json:"worker_id" gorm:"not null;uniqueIndex:idx_balance_worker_org"`
	VacationHours float64   `json:"vacation_hours" gorm:"not null;default:0"`
	RolHours      float64   `json:"rol_hours" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
