package models

import "time"

type Worker struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrgID      uint      `json:"org_id" gorm:"index;not null"`
	WorkerCode string    `json:"worker_code" gorm:"size:20;not null;uniqueIndex"`
	FirstName  string    `json:"first_name" gorm:"size:50;not null"`
	LastName   string    `json:"last_name" gorm:"size:50;not null"`
	Phone      string    `json:"phone" gorm:"size:15"`
	Email      string    `json:"email" gorm:"size:50;not null;uniqueIndex"`
	JobTitle   string    `json:"job_title" gorm:"size:50"`
	HireDate   string    `json:"hire_date" gorm:"size:10"` // YYYY-MM-DD
	Active     bool      `json:"active" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
