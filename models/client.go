package models

import "time"

type Client struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrgID     uint      `json:"org_id" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"size:120;not null"`
	VatNumber string    `json:"vat_number" gorm:"size:20"`
	Address   string    `json:"address" gorm:"size:200"`
	Email     string    `json:"email" gorm:"size:50"`
	Phone     string    `json:"phone" gorm:"size:15"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
