package leave

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lmoretti/workcrew-backend/models"
)

// Balance returns the worker's balance row, or nil when none has been
// configured yet. Absence is a valid state, not an error.
func (e *Engine) Balance(orgID, workerID uint) (*models.LeaveBalance, error) {
	var b models.LeaveBalance
	err := e.db.Where("org_id = ? AND worker_id = ?", orgID, workerID).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// SetBalance upserts the worker's counters to the given values. Idempotent:
// repeated calls with the same arguments leave the row unchanged. Negative
// values are rejected; no validation against outstanding pending requests
// is performed, the balance is a plain ledger.
func (e *Engine) SetBalance(orgID, workerID uint, vacationHours, rolHours float64) (*models.LeaveBalance, error) {
	if vacationHours < 0 {
		return nil, invalid("vacation_hours", "must be non-negative")
	}
	if rolHours < 0 {
		return nil, invalid("rol_hours", "must be non-negative")
	}

	b := models.LeaveBalance{
		OrgID:         orgID,
		WorkerID:      workerID,
		VacationHours: vacationHours,
		RolHours:      rolHours,
	}
	err := e.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "org_id"}, {Name: "worker_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"vacation_hours", "rol_hours", "updated_at"}),
	}).Create(&b).Error
	if err != nil {
		return nil, err
	}
	return e.Balance(orgID, workerID)
}

// balanceColumn maps a debitable request kind to its counter column.
func balanceColumn(kind string) (string, bool) {
	switch kind {
	case models.LeaveVacation:
		return "vacation_hours", true
	case models.LeaveRol:
		return "rol_hours", true
	}
	return "", false
}

// debitTx decrements the counter for kind by hours as a single conditional
// update, so concurrent approvals cannot drive the balance negative.
// Returns ErrNotFound when no balance row exists and ErrInsufficientBalance
// when the row holds fewer hours than requested.
func (e *Engine) debitTx(tx *gorm.DB, orgID, workerID uint, kind string, hours float64) error {
	col, ok := balanceColumn(kind)
	if !ok {
		return invalid("kind", "not debitable: "+kind)
	}

	res := tx.Model(&models.LeaveBalance{}).
		Where("org_id = ? AND worker_id = ?", orgID, workerID).
		Where(col+" >= ?", hours).
		Update(col, gorm.Expr(col+" - ?", hours))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var n int64
		if err := tx.Model(&models.LeaveBalance{}).
			Where("org_id = ? AND worker_id = ?", orgID, workerID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return ErrInsufficientBalance
	}
	return nil
}

// Debit is the standalone form of debitTx, for admin corrections.
func (e *Engine) Debit(orgID, workerID uint, kind string, hours float64) error {
	return e.debitTx(e.db, orgID, workerID, kind, hours)
}
