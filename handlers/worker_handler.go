package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/lmoretti/workcrew-backend/database"
	"github.com/lmoretti/workcrew-backend/middlewares"
	"github.com/lmoretti/workcrew-backend/models"
)

var (
	wrkReCode  = regexp.MustCompile(`^[A-Za-z0-9]{1,20}$`)
	wrkReName  = regexp.MustCompile(`^[A-Za-zÀ-ÿ' \-]{1,50}$`)
	wrkReEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	wrkReDate  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

type WorkerHandler struct{}

func NewWorkerHandler() *WorkerHandler { return &WorkerHandler{} }

type workerPayload struct {
	WorkerCode string `json:"worker_code"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	JobTitle   string `json:"job_title"`
	HireDate   string `json:"hire_date"`
	Active     *bool  `json:"active"`
}

func (p *workerPayload) norm() {
	p.WorkerCode = strings.TrimSpace(p.WorkerCode)
	p.FirstName = strings.Join(strings.Fields(p.FirstName), " ")
	p.LastName = strings.Join(strings.Fields(p.LastName), " ")
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.JobTitle = strings.Join(strings.Fields(p.JobTitle), " ")
	p.HireDate = strings.TrimSpace(p.HireDate)
}

func validateWorker(p *workerPayload) map[string]string {
	errs := map[string]string{}
	if p.WorkerCode == "" || !wrkReCode.MatchString(p.WorkerCode) {
		errs["worker_code"] = "alphanumeric, max 20 chars"
	}
	if p.FirstName == "" || !wrkReName.MatchString(p.FirstName) {
		errs["first_name"] = "letters, spaces, hyphens (max 50)"
	}
	if p.LastName == "" || !wrkReName.MatchString(p.LastName) {
		errs["last_name"] = "letters, spaces, hyphens (max 50)"
	}
	if p.Email == "" || len(p.Email) > 50 || !wrkReEmail.MatchString(p.Email) {
		errs["email"] = "invalid email (max 50 chars)"
	}
	if p.HireDate != "" && !wrkReDate.MatchString(p.HireDate) {
		errs["hire_date"] = "want YYYY-MM-DD"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /admin/workers?q=&active=&page=&size=
func (h *WorkerHandler) List(c echo.Context) error {
	orgID := middlewares.OrgID(c)
	page, size := pageSize(c)

	tx := database.DB.Model(&models.Worker{}).Where("org_id = ?", orgID)
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("worker_code ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?",
			like, like, like, like)
	}
	if a := c.QueryParam("active"); a == "true" || a == "false" {
		tx = tx.Where("active = ?", a == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	var items []models.Worker
	if err := tx.Order("last_name ASC, first_name ASC").Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items, "page": page, "size": size, "total": total})
}

// GET /admin/workers/:id
func (h *WorkerHandler) Get(c echo.Context) error {
	var w models.Worker
	err := database.DB.Where("org_id = ?", middlewares.OrgID(c)).First(&w, "id = ?", c.Param("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, w)
}

// POST /admin/workers
func (h *WorkerHandler) Create(c echo.Context) error {
	var p workerPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.norm()
	if errs := validateWorker(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	orgID := middlewares.OrgID(c)
	var cnt int64
	database.DB.Model(&models.Worker{}).
		Where("org_id = ? AND (worker_code = ? OR LOWER(email) = ?)", orgID, p.WorkerCode, p.Email).
		Count(&cnt)
	if cnt > 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "DUP_CODE_OR_EMAIL"})
	}

	w := models.Worker{
		OrgID:      orgID,
		WorkerCode: p.WorkerCode,
		FirstName:  p.FirstName, LastName: p.LastName,
		Phone: p.Phone, Email: p.Email,
		JobTitle: p.JobTitle, HireDate: p.HireDate,
		Active: true,
	}
	if p.Active != nil {
		w.Active = *p.Active
	}
	if err := database.DB.Create(&w).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, w)
}

// PUT /admin/workers/:id
func (h *WorkerHandler) Update(c echo.Context) error {
	var cur models.Worker
	err := database.DB.Where("org_id = ?", middlewares.OrgID(c)).First(&cur, "id = ?", c.Param("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	var p workerPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.norm()
	if errs := validateWorker(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	var cnt int64
	database.DB.Model(&models.Worker{}).
		Where("org_id = ? AND (worker_code = ? OR LOWER(email) = ?) AND id <> ?", cur.OrgID, p.WorkerCode, p.Email, cur.ID).
		Count(&cnt)
	if cnt > 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "DUP_CODE_OR_EMAIL"})
	}

	cur.WorkerCode = p.WorkerCode
	cur.FirstName = p.FirstName
	cur.LastName = p.LastName
	cur.Phone = p.Phone
	cur.Email = p.Email
	cur.JobTitle = p.JobTitle
	cur.HireDate = p.HireDate
	if p.Active != nil {
		cur.Active = *p.Active
	}
	if err := database.DB.Save(&cur).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cur)
}
