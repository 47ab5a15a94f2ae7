package models

import "time"

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	OrgID    uint   `json:"org_id" gorm:"index;not null"`
	Username string `json:"username" gorm:"uniqueIndex;size:60;not null"`
	Password string `json:"-" gorm:"not null"`            // bcrypt hash
	Role     string `json:"role" gorm:"size:20;not null"` // "admin" | "worker"
	Name     string `json:"name" gorm:"size:120"`
	// WorkerID links a worker login to its roster entry. Admin accounts
	// have no worker row.
	WorkerID  *uint     `json:"worker_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
