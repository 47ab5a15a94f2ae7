package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lmoretti/workcrew-backend/database"
	"github.com/lmoretti/workcrew-backend/middlewares"
	"github.com/lmoretti/workcrew-backend/models"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler { return &NotificationHandler{} }

// GET /worker/notifications?after=<id>&size=
// Poll endpoint. Clients remember the last id they saw and pass it back;
// the server keeps no read markers.
func (h *NotificationHandler) Poll(c echo.Context) error {
	wid, err := callerWorkerID(c)
	if err != nil {
		return err
	}
	after := atoiOr(c.QueryParam("after"), 0)
	size := atoiOr(c.QueryParam("size"), 50)
	if size < 1 || size > 200 {
		size = 50
	}

	var rows []models.Notification
	if err := database.DB.
		Where("org_id = ? AND worker_id = ? AND id > ?", middlewares.OrgID(c), wid, after).
		Order("id ASC").Limit(size).Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /worker/notifications/count?after=<id>
func (h *NotificationHandler) Count(c echo.Context) error {
	wid, err := callerWorkerID(c)
	if err != nil {
		return err
	}
	after := atoiOr(c.QueryParam("after"), 0)

	var n int64
	if err := database.DB.Model(&models.Notification{}).
		Where("org_id = ? AND worker_id = ? AND id > ?", middlewares.OrgID(c), wid, after).
		Count(&n).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_COUNT_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"count": n})
}
