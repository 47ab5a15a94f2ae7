package models

import "time"

type Vehicle struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	OrgID uint   `json:"org_id" gorm:"index;not null"`
	Plate string `json:"plate" gorm:"size:10;not null;uniqueIndex"`
	Model string `json:"model" gorm:"size:80"`
	// Current assignee, if any.
	WorkerID         *uint     `json:"worker_id" gorm:"index"`
	InsuranceExpiry  string    `json:"insurance_expiry" gorm:"size:10"`  // YYYY-MM-DD
	InspectionExpiry string    `json:"inspection_expiry" gorm:"size:10"` // YYYY-MM-DD
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
