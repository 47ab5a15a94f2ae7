package models

import "time"

type Worksite struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	OrgID    uint   `json:"org_id" gorm:"index;not null"`
	Name     string `json:"name" gorm:"size:120;not null"`
	Address  string `json:"address" gorm:"size:200"`
	ClientID *uint  `json:"client_id" gorm:"index"`
	// Open/close bounds of the site, YYYY-MM-DD; CloseDate empty while open.
	OpenDate  string    `json:"open_date" gorm:"size:10"`
	CloseDate string    `json:"close_date" gorm:"size:10"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
