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

var vehRePlate = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

type VehicleHandler struct{}

func NewVehicleHandler() *VehicleHandler { return &VehicleHandler{} }

type vehiclePayload struct {
	Plate            string `json:"plate"`
	Model            string `json:"model"`
	WorkerID         *uint  `json:"worker_id"`
	InsuranceExpiry  string `json:"insurance_expiry"`
	InspectionExpiry string `json:"inspection_expiry"`
}

func (p *vehiclePayload) norm() {
	p.Plate = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(p.Plate), " ", ""))
	p.Model = strings.Join(strings.Fields(p.Model), " ")
	p.InsuranceExpiry = strings.TrimSpace(p.InsuranceExpiry)
	p.InspectionExpiry = strings.TrimSpace(p.InspectionExpiry)
}

func (p *vehiclePayload) validate() map[string]string {
	errs := map[string]string{}
	if !vehRePlate.MatchString(p.Plate) {
		errs["plate"] = "letters and digits only, 2-10 chars"
	}
	if len(p.Model) > 80 {
		errs["model"] = "max 80 chars"
	}
	for field, v := range map[string]string{
		"insurance_expiry":  p.InsuranceExpiry,
		"inspection_expiry": p.InspectionExpiry,
	} {
		if v != "" && !wrkReDate.MatchString(v) {
			errs[field] = "want YYYY-MM-DD"
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /admin/vehicles?q=&expiring=YYYY-MM-DD&page=&size=
func (h *VehicleHandler) List(c echo.Context) error {
	page, size := pageSize(c)
	tx := database.DB.Model(&models.Vehicle{}).Where("org_id = ?", middlewares.OrgID(c))
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("plate ILIKE ? OR model ILIKE ?", like, like)
	}
	// expiring=<date>: insurance or inspection due on or before that date.
	if d := strings.TrimSpace(c.QueryParam("expiring")); wrkReDate.MatchString(d) {
		tx = tx.Where("(insurance_expiry <> '' AND insurance_expiry <= ?) OR (inspection_expiry <> '' AND inspection_expiry <= ?)", d, d)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	var items []models.Vehicle
	if err := tx.Order("plate ASC").Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items, "page": page, "size": size, "total": total})
}

// POST /admin/vehicles
func (h *VehicleHandler) Create(c echo.Context) error {
	var p vehiclePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.norm()
	if errs := p.validate(); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	var cnt int64
	database.DB.Model(&models.Vehicle{}).Where("plate = ?", p.Plate).Count(&cnt)
	if cnt > 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "DUP_PLATE"})
	}

	v := models.Vehicle{
		OrgID: middlewares.OrgID(c),
		Plate: p.Plate, Model: p.Model, WorkerID: p.WorkerID,
		InsuranceExpiry: p.InsuranceExpiry, InspectionExpiry: p.InspectionExpiry,
	}
	if err := database.DB.Create(&v).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, v)
}

// PUT /admin/vehicles/:id
func (h *VehicleHandler) Update(c echo.Context) error {
	var cur models.Vehicle
	err := database.DB.Where("org_id = ?", middlewares.OrgID(c)).First(&cur, "id = ?", c.Param("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	var p vehiclePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.norm()
	if errs := p.validate(); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	var cnt int64
	database.DB.Model(&models.Vehicle{}).Where("plate = ? AND id <> ?", p.Plate, cur.ID).Count(&cnt)
	if cnt > 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "DUP_PLATE"})
	}

	cur.Plate = p.Plate
	cur.Model = p.Model
	cur.WorkerID = p.WorkerID
	cur.InsuranceExpiry = p.InsuranceExpiry
	cur.InspectionExpiry = p.InspectionExpiry
	if err := database.DB.Save(&cur).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cur)
}

// DELETE /admin/vehicles/:id
func (h *VehicleHandler) Delete(c echo.Context) error {
	res := database.DB.Where("org_id = ?", middlewares.OrgID(c)).Delete(&models.Vehicle{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
