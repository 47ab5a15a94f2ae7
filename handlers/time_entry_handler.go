package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/lmoretti/workcrew-backend/database"
	"github.com/lmoretti/workcrew-backend/middlewares"
	"github.com/lmoretti/workcrew-backend/models"
)

type TimeEntryHandler struct{}

func NewTimeEntryHandler() *TimeEntryHandler { return &TimeEntryHandler{} }

type timeEntryPayload struct {
	WorkerID   uint    `json:"worker_id"`
	WorksiteID *uint   `json:"worksite_id"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	Note       string  `json:"note"`
}

func (p *timeEntryPayload) validate() map[string]string {
	errs := map[string]string{}
	p.Date = strings.TrimSpace(p.Date)
	if !wrkReDate.MatchString(p.Date) {
		errs["date"] = "want YYYY-MM-DD"
	}
	if p.Hours <= 0 || p.Hours > 24 {
		errs["hours"] = "must be in (0, 24]"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /admin/time-entries?workerId=&worksiteId=&from=&to=&page=&size=
// Workers hit the same handler via /worker/time-entries and are pinned to
// their own rows.
func (h *TimeEntryHandler) List(c echo.Context) error {
	page, size := pageSize(c)
	tx := database.DB.Model(&models.TimeEntry{}).Where("org_id = ?", middlewares.OrgID(c))

	if middlewares.Role(c) != "admin" {
		wid, err := callerWorkerID(c)
		if err != nil {
			return err
		}
		tx = tx.Where("worker_id = ?", wid)
	} else if v := strings.TrimSpace(c.QueryParam("workerId")); v != "" {
		tx = tx.Where("worker_id = ?", v)
	}
	if v := strings.TrimSpace(c.QueryParam("worksiteId")); v != "" {
		tx = tx.Where("worksite_id = ?", v)
	}
	if from, to := c.QueryParam("from"), c.QueryParam("to"); from != "" && to != "" {
		tx = tx.Where("date BETWEEN ? AND ?", from, to)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	var items []models.TimeEntry
	if err := tx.Order("date DESC, id DESC").Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items, "page": page, "size": size, "total": total})
}

// POST /worker/time-entries (also mounted under /admin)
func (h *TimeEntryHandler) Create(c echo.Context) error {
	var p timeEntryPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if errs := p.validate(); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	// Non-admins can only log their own hours.
	if middlewares.Role(c) != "admin" {
		wid, err := callerWorkerID(c)
		if err != nil {
			return err
		}
		p.WorkerID = wid
	}
	if p.WorkerID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": map[string]string{"worker_id": "required"}})
	}

	te := models.TimeEntry{
		OrgID:    middlewares.OrgID(c),
		WorkerID: p.WorkerID, WorksiteID: p.WorksiteID,
		Date: p.Date, Hours: p.Hours, Note: p.Note,
	}
	if err := database.DB.Create(&te).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, te)
}

// DELETE /admin/time-entries/:id
func (h *TimeEntryHandler) Delete(c echo.Context) error {
	res := database.DB.Where("org_id = ?", middlewares.OrgID(c)).Delete(&models.TimeEntry{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// callerWorkerID resolves the authenticated user to its worker row.
func callerWorkerID(c echo.Context) (uint, error) {
	var u models.User
	if err := database.DB.First(&u, middlewares.UserID(c)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "NO_WORKER_PROFILE"})
		}
		return 0, echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	if u.WorkerID == nil {
		return 0, echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "NO_WORKER_PROFILE"})
	}
	return *u.WorkerID, nil
}
