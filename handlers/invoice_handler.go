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

type InvoiceHandler struct{}

func NewInvoiceHandler() *InvoiceHandler { return &InvoiceHandler{} }

type invoicePayload struct {
	ClientID  uint    `json:"client_id"`
	Number    string  `json:"number"`
	IssueDate string  `json:"issue_date"`
	Amount    float64 `json:"amount"`
	Paid      *bool   `json:"paid"`
	Notes     string  `json:"notes"`
}

func (p *invoicePayload) validate(orgID uint) map[string]string {
	errs := map[string]string{}
	p.Number = strings.TrimSpace(p.Number)
	p.IssueDate = strings.TrimSpace(p.IssueDate)
	if p.Number == "" || len(p.Number) > 30 {
		errs["number"] = "required, max 30 chars"
	}
	if !wrkReDate.MatchString(p.IssueDate) {
		errs["issue_date"] = "want YYYY-MM-DD"
	}
	if p.Amount < 0 {
		errs["amount"] = "must be non-negative"
	}
	if p.ClientID == 0 {
		errs["client_id"] = "required"
	} else {
		var n int64
		database.DB.Model(&models.Client{}).Where("org_id = ? AND id = ?", orgID, p.ClientID).Count(&n)
		if n == 0 {
			errs["client_id"] = "unknown client"
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /admin/invoices?clientId=&paid=&from=&to=&page=&size=
func (h *InvoiceHandler) List(c echo.Context) error {
	page, size := pageSize(c)
	tx := database.DB.Model(&models.Invoice{}).Where("org_id = ?", middlewares.OrgID(c))
	if v := strings.TrimSpace(c.QueryParam("clientId")); v != "" {
		tx = tx.Where("client_id = ?", v)
	}
	if v := c.QueryParam("paid"); v == "true" || v == "false" {
		tx = tx.Where("paid = ?", v == "true")
	}
	if from, to := c.QueryParam("from"), c.QueryParam("to"); from != "" && to != "" {
		tx = tx.Where("issue_date BETWEEN ? AND ?", from, to)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_COUNT_FAILED"})
	}
	var items []models.Invoice
	if err := tx.Order("issue_date DESC, id DESC").Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items, "page": page, "size": size, "total": total})
}

// POST /admin/invoices
func (h *InvoiceHandler) Create(c echo.Context) error {
	orgID := middlewares.OrgID(c)
	var p invoicePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if errs := p.validate(orgID); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	var cnt int64
	database.DB.Model(&models.Invoice{}).Where("org_id = ? AND number = ?", orgID, p.Number).Count(&cnt)
	if cnt > 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "DUP_NUMBER"})
	}

	inv := models.Invoice{
		OrgID: orgID, ClientID: p.ClientID, Number: p.Number,
		IssueDate: p.IssueDate, Amount: p.Amount, Notes: p.Notes,
	}
	if p.Paid != nil {
		inv.Paid = *p.Paid
	}
	if err := database.DB.Create(&inv).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, inv)
}

// PUT /admin/invoices/:id
func (h *InvoiceHandler) Update(c echo.Context) error {
	orgID := middlewares.OrgID(c)
	var cur models.Invoice
	err := database.DB.Where("org_id = ?", orgID).First(&cur, "id = ?", c.Param("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	var p invoicePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if errs := p.validate(orgID); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	var cnt int64
	database.DB.Model(&models.Invoice{}).
		Where("org_id = ? AND number = ? AND id <> ?", orgID, p.Number, cur.ID).Count(&cnt)
	if cnt > 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "DUP_NUMBER"})
	}

	cur.ClientID = p.ClientID
	cur.Number = p.Number
	cur.IssueDate = p.IssueDate
	cur.Amount = p.Amount
	cur.Notes = p.Notes
	if p.Paid != nil {
		cur.Paid = *p.Paid
	}
	if err := database.DB.Save(&cur).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cur)
}

// DELETE /admin/invoices/:id
func (h *InvoiceHandler) Delete(c echo.Context) error {
	res := database.DB.Where("org_id = ?", middlewares.OrgID(c)).Delete(&models.Invoice{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
