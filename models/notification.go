package models

import "time"

// Notification kinds.
const (
	NotifyLeaveResponse = "leave_response"
	NotifyAnnouncement  = "announcement"
)

// Notification is an append-only log row. Clients poll with an ?after=
// cursor; read markers live client-side, not here.
type Notification struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	OrgID    uint   `json:"org_id" gorm:"index;not null"`
	WorkerID uint   `json:"worker_id" gorm:"index;not null"`
	Kind     string `json:"kind" gorm:"size:30;not null"`
	Title    string `json:"title" gorm:"size:120"`
	Body     string `json:"body" gorm:"type:text"`
	// EntityRef points at the row the notification is about, e.g. "leave_request:42".
	EntityRef string    `json:"entity_ref" gorm:"size:60"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
