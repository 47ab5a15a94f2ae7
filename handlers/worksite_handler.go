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

type WorksiteHandler struct{}

func NewWorksiteHandler() *WorksiteHandler { return &WorksiteHandler{} }

type worksitePayload struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	ClientID  *uint  `json:"client_id"`
	OpenDate  string `json:"open_date"`
	CloseDate string `json:"close_date"`
	Active    *bool  `json:"active"`
}

func (p *worksitePayload) norm() {
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	p.Address = strings.TrimSpace(p.Address)
	p.OpenDate = strings.TrimSpace(p.OpenDate)
	p.CloseDate = strings.TrimSpace(p.CloseDate)
}

func (p *worksitePayload) validate() map[string]string {
	errs := map[string]string{}
	if p.Name == "" || len(p.Name) > 120 {
		errs["name"] = "required, max 120 chars"
	}
	if p.OpenDate != "" && !wrkReDate.MatchString(p.OpenDate) {
		errs["open_date"] = "want YYYY-MM-DD"
	}
	if p.CloseDate != "" && !wrkReDate.MatchString(p.CloseDate) {
		errs["close_date"] = "want YYYY-MM-DD"
	}
	if p.OpenDate != "" && p.CloseDate != "" && p.CloseDate < p.OpenDate {
		errs["close_date"] = "before open_date"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /admin/worksites?q=&active=&page=&size=
func (h *WorksiteHandler) List(c echo.Context) error {
	page, size := pageSize(c)
	tx := database.DB.Model(&models.Worksite{}).Where("org_id = ?", middlewares.OrgID(c))
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("name ILIKE ? OR address ILIKE ?", like, like)
	}
	if a := c.QueryParam("active"); a == "true" || a == "false" {
		tx = tx.Where("active = ?", a == "true")
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	var items []models.Worksite
	if err := tx.Order("id DESC").Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items, "page": page, "size": size, "total": total})
}

// POST /admin/worksites
func (h *WorksiteHandler) Create(c echo.Context) error {
	var p worksitePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.norm()
	if errs := p.validate(); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}
	w := models.Worksite{
		OrgID: middlewares.OrgID(c),
		Name:  p.Name, Address: p.Address, ClientID: p.ClientID,
		OpenDate: p.OpenDate, CloseDate: p.CloseDate, Active: true,
	}
	if p.Active != nil {
		w.Active = *p.Active
	}
	if err := database.DB.Create(&w).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, w)
}

// PUT /admin/worksites/:id
func (h *WorksiteHandler) Update(c echo.Context) error {
	var cur models.Worksite
	err := database.DB.Where("org_id = ?", middlewares.OrgID(c)).First(&cur, "id = ?", c.Param("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	var p worksitePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.norm()
	if errs := p.validate(); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}
	cur.Name = p.Name
	cur.Address = p.Address
	cur.ClientID = p.ClientID
	cur.OpenDate = p.OpenDate
	cur.CloseDate = p.CloseDate
	if p.Active != nil {
		cur.Active = *p.Active
	}
	if err := database.DB.Save(&cur).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cur)
}

// DELETE /admin/worksites/:id
func (h *WorksiteHandler) Delete(c echo.Context) error {
	res := database.DB.Where("org_id = ?", middlewares.OrgID(c)).Delete(&models.Worksite{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
