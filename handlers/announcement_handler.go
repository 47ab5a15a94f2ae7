package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/lmoretti/workcrew-backend/database"
	"github.com/lmoretti/workcrew-backend/middlewares"
	"github.com/lmoretti/workcrew-backend/models"
	"github.com/lmoretti/workcrew-backend/notify"
)

type AnnouncementHandler struct{}

func NewAnnouncementHandler() *AnnouncementHandler { return &AnnouncementHandler{} }

type announcementPayload struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	PublishDate string `json:"publish_date"`
}

func (p *announcementPayload) validate() map[string]string {
	errs := map[string]string{}
	p.Title = strings.Join(strings.Fields(p.Title), " ")
	p.PublishDate = strings.TrimSpace(p.PublishDate)
	if p.Title == "" || len(p.Title) > 120 {
		errs["title"] = "required, max 120 chars"
	}
	if p.PublishDate != "" && !wrkReDate.MatchString(p.PublishDate) {
		errs["publish_date"] = "want YYYY-MM-DD"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /worker/announcements?page=&size=
func (h *AnnouncementHandler) List(c echo.Context) error {
	page, size := pageSize(c)
	tx := database.DB.Model(&models.Announcement{}).Where("org_id = ?", middlewares.OrgID(c))
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	var items []models.Announcement
	if err := tx.Order("publish_date DESC, id DESC").Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items, "page": page, "size": size, "total": total})
}

// POST /admin/announcements
// Creation also fans a notification out to every active worker of the org,
// best effort.
func (h *AnnouncementHandler) Create(c echo.Context) error {
	orgID := middlewares.OrgID(c)
	var p announcementPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if errs := p.validate(); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}
	if p.PublishDate == "" {
		p.PublishDate = time.Now().Format("2006-01-02")
	}

	a := models.Announcement{
		OrgID: orgID, Title: p.Title, Body: p.Body,
		AuthorID: middlewares.UserID(c), PublishDate: p.PublishDate,
	}
	if err := database.DB.Create(&a).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	var workerIDs []uint
	if err := database.DB.Model(&models.Worker{}).
		Where("org_id = ? AND active = ?", orgID, true).
		Pluck("id", &workerIDs).Error; err == nil {
		notify.Dispatch(database.DB, orgID, models.NotifyAnnouncement, workerIDs,
			a.Title, a.Body, fmt.Sprintf("announcement:%d", a.ID))
	}

	return c.JSON(http.StatusCreated, a)
}

// PUT /admin/announcements/:id
func (h *AnnouncementHandler) Update(c echo.Context) error {
	var cur models.Announcement
	err := database.DB.Where("org_id = ?", middlewares.OrgID(c)).First(&cur, "id = ?", c.Param("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	var p announcementPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if errs := p.validate(); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}
	cur.Title = p.Title
	cur.Body = p.Body
	if p.PublishDate != "" {
		cur.PublishDate = p.PublishDate
	}
	if err := database.DB.Save(&cur).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cur)
}

// DELETE /admin/announcements/:id
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	res := database.DB.Where("org_id = ?", middlewares.OrgID(c)).Delete(&models.Announcement{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
