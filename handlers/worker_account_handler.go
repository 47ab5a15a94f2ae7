package handlers

import (
	"crypto/rand"
	"math/big"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lmoretti/workcrew-backend/database"
	"github.com/lmoretti/workcrew-backend/middlewares"
	"github.com/lmoretti/workcrew-backend/models"
)

// WorkerAccountHandler covers the privileged operations: account creation,
// password reset and worker deletion. Every route is admin-only and scoped
// to the caller's organization.
type WorkerAccountHandler struct{}

func NewWorkerAccountHandler() *WorkerAccountHandler { return &WorkerAccountHandler{} }

type createWorkerAccountReq struct {
	WorkerID uint   `json:"worker_id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func hashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func randomPassword(n int) string {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	if n < 8 {
		n = 8
	}
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			// crypto/rand failing means the platform is broken; bail hard.
			panic(err)
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out)
}

// GET /admin/worker-accounts
func (h *WorkerAccountHandler) List(c echo.Context) error {
	var users []models.User
	err := database.DB.
		Where("org_id = ? AND role = ?", middlewares.OrgID(c), "worker").
		Order("updated_at DESC").Find(&users).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, users)
}

// POST /admin/worker-accounts creates a login for an existing worker.
func (h *WorkerAccountHandler) Create(c echo.Context) error {
	orgID := middlewares.OrgID(c)
	var req createWorkerAccountReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.WorkerID == 0 || req.Username == "" || len(req.Password) < 8 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	// The worker must exist in the caller's org.
	var w models.Worker
	if err := database.DB.Where("org_id = ?", orgID).First(&w, req.WorkerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "WORKER_NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	var cnt int64
	database.DB.Model(&models.User{}).
		Where("username = ? OR worker_id = ?", req.Username, req.WorkerID).
		Count(&cnt)
	if cnt > 0 {
		return c.JSON(http.StatusConflict, map[string]any{"error": "ACCOUNT_EXISTS"})
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "HASH_FAILED"})
	}
	u := models.User{
		OrgID:    orgID,
		Username: req.Username,
		Password: hash,
		Role:     "worker",
		Name:     strings.TrimSpace(w.FirstName + " " + w.LastName),
		WorkerID: &w.ID,
	}
	if err := database.DB.Create(&u).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, u)
}

// POST /admin/worker-accounts/:id/reset returns a one-time password.
func (h *WorkerAccountHandler) ResetPassword(c echo.Context) error {
	var u models.User
	err := database.DB.Where("org_id = ?", middlewares.OrgID(c)).First(&u, "id = ?", c.Param("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	otp := randomPassword(12)
	hash, herr := hashPassword(otp)
	if herr != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "HASH_FAILED"})
	}
	if err := database.DB.Model(&u).Update("password", hash).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_UPDATE_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"one_time_password": otp})
}

// DELETE /admin/workers/:id verifies the target belongs to the caller's
// org before touching anything, then removes the login too.
func (h *WorkerAccountHandler) DeleteWorker(c echo.Context) error {
	orgID := middlewares.OrgID(c)

	var w models.Worker
	if err := database.DB.Where("org_id = ?", orgID).First(&w, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("org_id = ? AND worker_id = ?", orgID, w.ID).Delete(&models.User{}).Error; err != nil {
			return err
		}
		return tx.Delete(&w).Error
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_DELETE_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
