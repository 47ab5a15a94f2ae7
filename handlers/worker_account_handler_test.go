package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/lmoretti/workcrew-backend/database"
	"github.com/lmoretti/workcrew-backend/models"
)

func TestCreateWorkerAccountAndLoginRow(t *testing.T) {
	_, adminID, _, _ := setupHandlerTest(t)
	h := NewWorkerAccountHandler()

	// The seeded worker already has a login; add a second worker.
	w2 := models.Worker{OrgID: 1, WorkerCode: "W002", FirstName: "Luca", LastName: "Verdi", Email: "luca@acme.it", Active: true}
	if err := database.DB.Create(&w2).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	c, rec := newCtx(t, http.MethodPost, "/admin/worker-accounts",
		`{"worker_id":`+strconv.Itoa(int(w2.ID))+`,"username":"luca","password":"supersegreta"}`,
		adminID, "admin")
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var u models.User
	if err := database.DB.Where("username = ?", "luca").First(&u).Error; err != nil {
		t.Fatalf("account row missing: %v", err)
	}
	if u.Role != "worker" || u.WorkerID == nil || *u.WorkerID != w2.ID {
		t.Fatalf("unexpected account: %+v", u)
	}
	if u.Password == "supersegreta" {
		t.Fatal("password stored in clear")
	}

	// Duplicate account for the same worker is refused.
	c, rec = newCtx(t, http.MethodPost, "/admin/worker-accounts",
		`{"worker_id":`+strconv.Itoa(int(w2.ID))+`,"username":"luca2","password":"supersegreta"}`,
		adminID, "admin")
	if err := h.Create(c); err != nil {
		t.Fatalf("create dup: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("dup status = %d, want 409", rec.Code)
	}
}

func TestDeleteWorkerIsOrgScoped(t *testing.T) {
	_, adminID, _, workerID := setupHandlerTest(t)
	h := NewWorkerAccountHandler()

	// A worker of another organization.
	other := models.Worker{OrgID: 2, WorkerCode: "X001", FirstName: "Eve", LastName: "Intrusa", Email: "eve@other.it"}
	if err := database.DB.Create(&other).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Cross-org delete must 404 without touching the row.
	c, rec := newCtx(t, http.MethodDelete, "/admin/workers/:id", "", adminID, "admin")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(other.ID)))
	if err := h.DeleteWorker(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("cross-org delete status = %d, want 404", rec.Code)
	}
	var n int64
	database.DB.Model(&models.Worker{}).Where("id = ?", other.ID).Count(&n)
	if n != 1 {
		t.Fatal("cross-org worker was deleted")
	}

	// Same-org delete removes worker and its login.
	c, rec = newCtx(t, http.MethodDelete, "/admin/workers/:id", "", adminID, "admin")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(workerID)))
	if err := h.DeleteWorker(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body %s", rec.Code, rec.Body.String())
	}
	database.DB.Model(&models.Worker{}).Where("id = ?", workerID).Count(&n)
	if n != 0 {
		t.Fatal("worker row survived deletion")
	}
	database.DB.Model(&models.User{}).Where("worker_id = ?", workerID).Count(&n)
	if n != 0 {
		t.Fatal("login row survived deletion")
	}
}

func TestResetPasswordIssuesOneTimePassword(t *testing.T) {
	_, adminID, workerUserID, _ := setupHandlerTest(t)
	h := NewWorkerAccountHandler()

	var before models.User
	if err := database.DB.First(&before, workerUserID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}

	c, rec := newCtx(t, http.MethodPost, "/admin/worker-accounts/:id/reset", "", adminID, "admin")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(workerUserID)))
	if err := h.ResetPassword(c); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body["one_time_password"]) < 12 {
		t.Fatalf("weak or missing OTP: %q", body["one_time_password"])
	}

	var after models.User
	if err := database.DB.First(&after, workerUserID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if after.Password == before.Password {
		t.Fatal("password hash unchanged after reset")
	}
}
