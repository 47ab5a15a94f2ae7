package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lmoretti/workcrew-backend/models"
)

func TestAvailabilityBoardReflectsApprovalOnly(t *testing.T) {
	engine, adminID, workerUserID, workerID := setupHandlerTest(t)
	if _, err := engine.SetBalance(1, workerID, 40, 0); err != nil {
		t.Fatalf("set balance: %v", err)
	}
	lr := NewLeaveRequestHandler(engine)
	av := NewAvailabilityHandler(engine)

	c, rec := newCtx(t, http.MethodPost, "/worker/leave-requests",
		`{"kind":"vacation","date_from":"2026-03-02","date_to":"2026-03-03"}`,
		workerUserID, "worker")
	if err := lr.Submit(c); err != nil {
		t.Fatalf("submit: %v", err)
	}
	var req models.LeaveRequest
	if err := json.Unmarshal(rec.Body.Bytes(), &req); err != nil {
		t.Fatalf("decode: %v", err)
	}

	board := func() (available bool, label string) {
		c, rec := newCtx(t, http.MethodGet, "/worker/availability?date=2026-03-02", "", workerUserID, "worker")
		if err := av.Board(c); err != nil {
			t.Fatalf("board: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("board status = %d", rec.Code)
		}
		var body struct {
			Entries []struct {
				WorkerID  uint   `json:"worker_id"`
				Available bool   `json:"available"`
				Label     string `json:"label"`
			} `json:"entries"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode board: %v", err)
		}
		for _, e := range body.Entries {
			if e.WorkerID == workerID {
				return e.Available, e.Label
			}
		}
		t.Fatal("worker missing from board")
		return false, ""
	}

	// Pending request: still available.
	if avail, _ := board(); !avail {
		t.Fatal("pending request must not affect the board")
	}

	if _, err := engine.Review(1, req.ID, adminID, models.LeaveStatusApproved); err != nil {
		t.Fatalf("approve: %v", err)
	}

	// Approved: shown as on Ferie.
	avail, label := board()
	if avail || label != "Ferie" {
		t.Fatalf("expected unavailable with label Ferie, got avail=%v label=%q", avail, label)
	}
}
