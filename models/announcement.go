package models

import "time"

type Announcement struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OrgID       uint      `json:"org_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"size:120;not null"`
	Body        string    `json:"body" gorm:"type:text"`
	AuthorID    uint      `json:"author_id"` // user id of the admin who posted
	PublishDate string    `json:"publish_date" gorm:"size:10"` // YYYY-MM-DD
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
