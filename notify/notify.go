// Package notify appends rows to the notification log. Delivery is a poll
// by the clients; there is no push channel.
package notify

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lmoretti/workcrew-backend/models"
)

// Dispatch inserts one notification row per recipient. Best effort by
// contract: a failed insert is logged and swallowed so that the state
// transition that triggered it never rolls back.
func Dispatch(db *gorm.DB, orgID uint, kind string, recipients []uint, title, body, entityRef string) {
	if len(recipients) == 0 {
		return
	}
	rows := make([]models.Notification, 0, len(recipients))
	for _, workerID := range recipients {
		rows = append(rows, models.Notification{
			OrgID:     orgID,
			WorkerID:  workerID,
			Kind:      kind,
			Title:     title,
			Body:      body,
			EntityRef: entityRef,
		})
	}
	if err := db.Create(&rows).Error; err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"kind":       kind,
			"recipients": len(recipients),
			"entity_ref": entityRef,
		}).Error("notify: dispatch failed")
	}
}
