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

type ClientHandler struct{}

func NewClientHandler() *ClientHandler { return &ClientHandler{} }

type clientPayload struct {
	Name      string `json:"name"`
	VatNumber string `json:"vat_number"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (p *clientPayload) norm() {
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	p.VatNumber = strings.TrimSpace(p.VatNumber)
	p.Address = strings.TrimSpace(p.Address)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
}

func (p *clientPayload) validate() map[string]string {
	errs := map[string]string{}
	if p.Name == "" || len(p.Name) > 120 {
		errs["name"] = "required, max 120 chars"
	}
	if p.Email != "" && !wrkReEmail.MatchString(p.Email) {
		errs["email"] = "invalid email"
	}
	if len(p.VatNumber) > 20 {
		errs["vat_number"] = "max 20 chars"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /admin/clients?q=&page=&size=
func (h *ClientHandler) List(c echo.Context) error {
	page, size := pageSize(c)
	tx := database.DB.Model(&models.Client{}).Where("org_id = ?", middlewares.OrgID(c))
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("name ILIKE ? OR vat_number ILIKE ? OR email ILIKE ?", like, like, like)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	var items []models.Client
	if err := tx.Order("name ASC").Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items, "page": page, "size": size, "total": total})
}

// POST /admin/clients
func (h *ClientHandler) Create(c echo.Context) error {
	var p clientPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.norm()
	if errs := p.validate(); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}
	cl := models.Client{
		OrgID: middlewares.OrgID(c),
		Name:  p.Name, VatNumber: p.VatNumber,
		Address: p.Address, Email: p.Email, Phone: p.Phone,
	}
	if err := database.DB.Create(&cl).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, cl)
}

// PUT /admin/clients/:id
func (h *ClientHandler) Update(c echo.Context) error {
	var cur models.Client
	err := database.DB.Where("org_id = ?", middlewares.OrgID(c)).First(&cur, "id = ?", c.Param("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	var p clientPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.norm()
	if errs := p.validate(); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}
	cur.Name = p.Name
	cur.VatNumber = p.VatNumber
	cur.Address = p.Address
	cur.Email = p.Email
	cur.Phone = p.Phone
	if err := database.DB.Save(&cur).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cur)
}

// DELETE /admin/clients/:id
func (h *ClientHandler) Delete(c echo.Context) error {
	// Refuse while invoices still reference the client.
	var n int64
	if err := database.DB.Model(&models.Invoice{}).
		Where("org_id = ? AND client_id = ?", middlewares.OrgID(c), c.Param("id")).
		Count(&n).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	if n > 0 {
		return c.JSON(http.StatusConflict, map[string]string{"error": "CLIENT_HAS_INVOICES"})
	}

	res := database.DB.Where("org_id = ?", middlewares.OrgID(c)).Delete(&models.Client{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
