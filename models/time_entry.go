package models

import "time"

// TimeEntry is one worked slot of one worker on one day.
type TimeEntry struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrgID      uint      `json:"org_id" gorm:"index;not null"`
	WorkerID   uint      `json:"worker_id" gorm:"index;not null"`
	WorksiteID *uint     `json:"worksite_id" gorm:"index"`
	Date       string    `json:"date" gorm:"size:10;not null;index"` // YYYY-MM-DD
	Hours      float64   `json:"hours" gorm:"not null"`
	Note       string    `json:"note" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
