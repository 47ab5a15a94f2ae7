package models

import "time"

type Invoice struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrgID     uint      `json:"org_id" gorm:"index;not null"`
	ClientID  uint      `json:"client_id" gorm:"index;not null"`
	Number    string    `json:"number" gorm:"size:30;not null"`
	IssueDate string    `json:"issue_date" gorm:"size:10;not null"` // YYYY-MM-DD
	Amount    float64   `json:"amount" gorm:"not null"`
	Paid      bool      `json:"paid" gorm:"default:false"`
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
