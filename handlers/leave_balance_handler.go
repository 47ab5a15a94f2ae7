package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lmoretti/workcrew-backend/leave"
	"github.com/lmoretti/workcrew-backend/middlewares"
)

type LeaveBalanceHandler struct {
	Engine *leave.Engine
}

func NewLeaveBalanceHandler(engine *leave.Engine) *LeaveBalanceHandler {
	return &LeaveBalanceHandler{Engine: engine}
}

// GET /admin/workers/:id/balance
// Absence is a valid state: "not yet configured" answers 200 with null.
func (h *LeaveBalanceHandler) Get(c echo.Context) error {
	workerID := uint(atoiOr(c.Param("id"), 0))
	b, err := h.Engine.Balance(middlewares.OrgID(c), workerID)
	if err != nil {
		return leaveError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"balance": b})
}

type setBalanceReq struct {
	VacationHours float64 `json:"vacation_hours"`
	RolHours      float64 `json:"rol_hours"`
}

// PUT /admin/workers/:id/balance upserts the counters; idempotent.
func (h *LeaveBalanceHandler) Set(c echo.Context) error {
	workerID := uint(atoiOr(c.Param("id"), 0))
	if workerID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_WORKER_ID"})
	}
	var req setBalanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	b, err := h.Engine.SetBalance(middlewares.OrgID(c), workerID, req.VacationHours, req.RolHours)
	if err != nil {
		return leaveError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// GET /worker/balance returns the caller's own counters.
func (h *LeaveBalanceHandler) My(c echo.Context) error {
	wid, err := callerWorkerID(c)
	if err != nil {
		return err
	}
	b, berr := h.Engine.Balance(middlewares.OrgID(c), wid)
	if berr != nil {
		return leaveError(c, berr)
	}
	return c.JSON(http.StatusOK, map[string]any{"balance": b})
}
