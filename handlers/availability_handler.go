package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lmoretti/workcrew-backend/database"
	"github.com/lmoretti/workcrew-backend/leave"
	"github.com/lmoretti/workcrew-backend/middlewares"
	"github.com/lmoretti/workcrew-backend/models"
)

type AvailabilityHandler struct {
	Engine *leave.Engine
}

func NewAvailabilityHandler(engine *leave.Engine) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine}
}

// GET /worker/availability?date=YYYY-MM-DD
// Per-worker availability board for one date; defaults to today.
func (h *AvailabilityHandler) Board(c echo.Context) error {
	orgID := middlewares.OrgID(c)

	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	onDate, err := leave.ParseDate(date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}

	var workers []models.Worker
	if err := database.DB.
		Where("org_id = ? AND active = ?", orgID, true).
		Order("last_name ASC, first_name ASC").Find(&workers).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	approved, err := h.Engine.ApprovedRequests(orgID, date, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"date":    date,
		"entries": leave.ComputeAvailability(workers, approved, onDate),
	})
}

// GET /worker/availability/calendar?workerId=&from=&to=
// Day flags for calendar-cell shading of one worker over a window.
func (h *AvailabilityHandler) Calendar(c echo.Context) error {
	orgID := middlewares.OrgID(c)
	workerID := uint(atoiOr(c.QueryParam("workerId"), 0))
	from, to := strings.TrimSpace(c.QueryParam("from")), strings.TrimSpace(c.QueryParam("to"))

	start, err := leave.ParseDate(from)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	end, err := leave.ParseDate(to)
	if err != nil || end.Before(start) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	if leave.DaysInclusive(start, end) > 92 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "RANGE_TOO_WIDE"})
	}

	approved, err := h.Engine.ApprovedRequests(orgID, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	days := map[string]bool{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days[d.Format("2006-01-02")] = leave.IsDateInLeave(approved, workerID, d)
	}
	return c.JSON(http.StatusOK, map[string]any{"worker_id": workerID, "days": days})
}
