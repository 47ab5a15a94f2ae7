package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/lmoretti/workcrew-backend/database"
	"github.com/lmoretti/workcrew-backend/leave"
	"github.com/lmoretti/workcrew-backend/middlewares"
	"github.com/lmoretti/workcrew-backend/models"
)

type ReportHandler struct {
	Engine *leave.Engine
}

func NewReportHandler(engine *leave.Engine) *ReportHandler {
	return &ReportHandler{Engine: engine}
}

// GET /admin/reports/timesheet.xlsx?month=YYYY-MM
// One row per time entry of the month, worksite name resolved, leave days
// of each worker annotated from the approved requests.
func (h *ReportHandler) Timesheet(c echo.Context) error {
	orgID := middlewares.OrgID(c)

	month := c.QueryParam("month")
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_MONTH"})
	}
	last := first.AddDate(0, 1, -1)
	from, to := first.Format("2006-01-02"), last.Format("2006-01-02")

	var entries []models.TimeEntry
	if err := database.DB.
		Where("org_id = ? AND date BETWEEN ? AND ?", orgID, from, to).
		Order("worker_id ASC, date ASC").Find(&entries).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	var workers []models.Worker
	if err := database.DB.Where("org_id = ?", orgID).Find(&workers).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	workerName := make(map[uint]string, len(workers))
	for _, w := range workers {
		workerName[w.ID] = w.LastName + " " + w.FirstName
	}

	var sites []models.Worksite
	if err := database.DB.Where("org_id = ?", orgID).Find(&sites).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	siteName := make(map[uint]string, len(sites))
	for _, s := range sites {
		siteName[s.ID] = s.Name
	}

	approved, err := h.Engine.ApprovedRequests(orgID, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("report: close workbook")
		}
	}()

	const sheet = "Timesheet"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "REPORT_FAILED"})
	}
	headers := []string{"Worker", "Date", "Worksite", "Hours", "Leave", "Note"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, hd); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{"error": "REPORT_FAILED"})
		}
	}

	row := 2
	writeCell := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for _, te := range entries {
		site := ""
		if te.WorksiteID != nil {
			site = siteName[*te.WorksiteID]
		}
		day, _ := leave.ParseDate(te.Date)
		onLeave := ""
		if leave.IsDateInLeave(approved, te.WorkerID, day) {
			onLeave = "X"
		}
		writeCell(1, workerName[te.WorkerID])
		writeCell(2, te.Date)
		writeCell(3, site)
		writeCell(4, te.Hours)
		writeCell(5, onLeave)
		writeCell(6, te.Note)
		row++
	}

	filename := fmt.Sprintf("timesheet-%s-%s.xlsx", month, uuid.NewString()[:8])
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := f.WriteTo(c.Response()); err != nil {
		logrus.WithError(err).Error("report: stream workbook")
	}
	return nil
}
