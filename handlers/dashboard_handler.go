package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lmoretti/workcrew-backend/database"
	"github.com/lmoretti/workcrew-backend/leave"
	"github.com/lmoretti/workcrew-backend/middlewares"
	"github.com/lmoretti/workcrew-backend/models"
)

type DashboardHandler struct {
	Engine *leave.Engine
}

func NewDashboardHandler(engine *leave.Engine) *DashboardHandler {
	return &DashboardHandler{Engine: engine}
}

// GET /admin/dashboard
// Headline counts plus today's availability summary. Read-only; a failed
// count surfaces as an error rather than a silent zero.
func (h *DashboardHandler) Summary(c echo.Context) error {
	orgID := middlewares.OrgID(c)

	counts := map[string]int64{}

	var (
		cntWorkers   int64
		cntWorksites int64
		cntVehicles  int64
		cntPending   int64
		cntUnpaid    int64
	)
	steps := []struct {
		name string
		run  func() error
	}{
		{"workers", func() error {
			return database.DB.Model(&models.Worker{}).Where("org_id = ? AND active = ?", orgID, true).Count(&cntWorkers).Error
		}},
		{"worksites", func() error {
			return database.DB.Model(&models.Worksite{}).Where("org_id = ? AND active = ?", orgID, true).Count(&cntWorksites).Error
		}},
		{"vehicles", func() error {
			return database.DB.Model(&models.Vehicle{}).Where("org_id = ?", orgID).Count(&cntVehicles).Error
		}},
		{"pending_leaves", func() error {
			return database.DB.Model(&models.LeaveRequest{}).Where("org_id = ? AND status = ?", orgID, models.LeaveStatusPending).Count(&cntPending).Error
		}},
		{"unpaid_invoices", func() error {
			return database.DB.Model(&models.Invoice{}).Where("org_id = ? AND paid = ?", orgID, false).Count(&cntUnpaid).Error
		}},
	}
	for _, s := range steps {
		if err := s.run(); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_COUNT_FAILED", "step": s.name})
		}
	}
	counts["workers"] = cntWorkers
	counts["worksites"] = cntWorksites
	counts["vehicles"] = cntVehicles
	counts["pending_leaves"] = cntPending
	counts["unpaid_invoices"] = cntUnpaid

	// Today's absentees.
	today := time.Now().Format("2006-01-02")
	approved, err := h.Engine.ApprovedRequests(orgID, today, today)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	var workers []models.Worker
	if err := database.DB.Where("org_id = ? AND active = ?", orgID, true).Find(&workers).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	onDate, _ := leave.ParseDate(today)
	entries := leave.ComputeAvailability(workers, approved, onDate)
	var absent int
	for _, e := range entries {
		if !e.Available {
			absent++
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"counts":       counts,
		"today":        today,
		"absent_today": absent,
	})
}
