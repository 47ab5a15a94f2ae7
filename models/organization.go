package models

import "time"

// Organization is the tenant boundary. Every other row carries an OrgID.
type Organization struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:120;not null;uniqueIndex"`
	VatNumber string    `json:"vat_number" gorm:"size:20"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
