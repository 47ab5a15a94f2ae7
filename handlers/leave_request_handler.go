package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lmoretti/workcrew-backend/database"
	"github.com/lmoretti/workcrew-backend/leave"
	"github.com/lmoretti/workcrew-backend/middlewares"
	"github.com/lmoretti/workcrew-backend/models"
)

type LeaveRequestHandler struct {
	Engine *leave.Engine
}

func NewLeaveRequestHandler(engine *leave.Engine) *LeaveRequestHandler {
	return &LeaveRequestHandler{Engine: engine}
}

type submitLeaveReq struct {
	Kind           string  `json:"kind"`
	DateFrom       string  `json:"date_from"`
	DateTo         string  `json:"date_to"`
	Hours          float64 `json:"hours"`
	Reason         string  `json:"reason"`
	CertificateRef string  `json:"certificate_ref"`
}

// POST /worker/leave-requests
func (h *LeaveRequestHandler) Submit(c echo.Context) error {
	wid, err := callerWorkerID(c)
	if err != nil {
		return err
	}
	var req submitLeaveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	row, serr := h.Engine.Submit(leave.SubmitInput{
		OrgID:          middlewares.OrgID(c),
		WorkerID:       wid,
		Kind:           strings.TrimSpace(req.Kind),
		DateFrom:       strings.TrimSpace(req.DateFrom),
		DateTo:         strings.TrimSpace(req.DateTo),
		Hours:          req.Hours,
		Reason:         req.Reason,
		CertificateRef: req.CertificateRef,
	})
	if serr != nil {
		return leaveError(c, serr)
	}
	return c.JSON(http.StatusCreated, row)
}

// GET /worker/leave-requests lists the caller's own requests, newest first.
func (h *LeaveRequestHandler) ListMine(c echo.Context) error {
	wid, err := callerWorkerID(c)
	if err != nil {
		return err
	}
	var rows []models.LeaveRequest
	if err := database.DB.
		Where("org_id = ? AND worker_id = ?", middlewares.OrgID(c), wid).
		Order("submitted_at DESC, id DESC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /admin/leave-requests?status=&kind=&workerId=&from=&to=&page=&size=
func (h *LeaveRequestHandler) List(c echo.Context) error {
	page, size := pageSize(c)
	tx := database.DB.Model(&models.LeaveRequest{}).Where("org_id = ?", middlewares.OrgID(c))

	if v := strings.TrimSpace(c.QueryParam("status")); v != "" {
		tx = tx.Where("status = ?", v)
	}
	if v := strings.TrimSpace(c.QueryParam("kind")); v != "" {
		tx = tx.Where("kind = ?", v)
	}
	if v := strings.TrimSpace(c.QueryParam("workerId")); v != "" {
		tx = tx.Where("worker_id = ?", v)
	}
	if from, to := c.QueryParam("from"), c.QueryParam("to"); from != "" && to != "" {
		// range overlap
		tx = tx.Where("date_from <= ? AND date_to >= ?", to, from)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_COUNT_FAILED"})
	}
	var rows []models.LeaveRequest
	if err := tx.Order("submitted_at DESC, id DESC").Limit(size).Offset((page - 1) * size).Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": rows, "page": page, "size": size, "total": total})
}

// GET /admin/leave-requests/pending-count
func (h *LeaveRequestHandler) PendingCount(c echo.Context) error {
	var n int64
	if err := database.DB.Model(&models.LeaveRequest{}).
		Where("org_id = ? AND status = ?", middlewares.OrgID(c), models.LeaveStatusPending).
		Count(&n).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_COUNT_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"count": n})
}

// POST /admin/leave-requests/:id/approve
func (h *LeaveRequestHandler) Approve(c echo.Context) error {
	return h.review(c, models.LeaveStatusApproved)
}

// POST /admin/leave-requests/:id/reject
func (h *LeaveRequestHandler) Reject(c echo.Context) error {
	return h.review(c, models.LeaveStatusRejected)
}

func (h *LeaveRequestHandler) review(c echo.Context, decision string) error {
	id := uint(atoiOr(c.Param("id"), 0))
	row, err := h.Engine.Review(middlewares.OrgID(c), id, middlewares.UserID(c), decision)
	if err != nil {
		return leaveError(c, err)
	}
	return c.JSON(http.StatusOK, row)
}
