package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
)

func TestBalanceGetAbsentAnswersNull(t *testing.T) {
	engine, adminID, _, workerID := setupHandlerTest(t)
	h := NewLeaveBalanceHandler(engine)

	c, rec := newCtx(t, http.MethodGet, "/admin/workers/:id/balance", "", adminID, "admin")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(workerID)))
	if err := h.Get(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["balance"] != nil {
		t.Fatalf("unconfigured balance must be null, got %v", body["balance"])
	}
}

func TestBalanceSetThenGet(t *testing.T) {
	engine, adminID, _, workerID := setupHandlerTest(t)
	h := NewLeaveBalanceHandler(engine)

	id := strconv.Itoa(int(workerID))
	for i := 0; i < 2; i++ { // repeated set must not accumulate
		c, rec := newCtx(t, http.MethodPut, "/admin/workers/:id/balance",
			`{"vacation_hours":40,"rol_hours":8}`, adminID, "admin")
		c.SetParamNames("id")
		c.SetParamValues(id)
		if err := h.Set(c); err != nil {
			t.Fatalf("set: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("set status = %d, body %s", rec.Code, rec.Body.String())
		}
	}

	b, err := engine.Balance(1, workerID)
	if err != nil || b == nil {
		t.Fatalf("balance: %v %v", b, err)
	}
	if b.VacationHours != 40 || b.RolHours != 8 {
		t.Fatalf("expected (40, 8), got %+v", b)
	}
}

func TestBalanceSetNegativeRejected(t *testing.T) {
	engine, adminID, _, workerID := setupHandlerTest(t)
	h := NewLeaveBalanceHandler(engine)

	c, rec := newCtx(t, http.MethodPut, "/admin/workers/:id/balance",
		`{"vacation_hours":-3,"rol_hours":0}`, adminID, "admin")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(workerID)))
	if err := h.Set(c); err != nil {
		t.Fatalf("set: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
