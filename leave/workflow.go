package leave

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/lmoretti/workcrew-backend/models"
	"github.com/lmoretti/workcrew-backend/notify"
)

// SubmitInput carries the worker's new request. Field requirements depend
// on Kind: vacation and sick_leave need the date range (hours are derived),
// rol needs explicit Hours and a Reason, sick_leave needs CertificateRef.
type SubmitInput struct {
	OrgID          uint
	WorkerID       uint
	Kind           string
	DateFrom       string // YYYY-MM-DD
	DateTo         string // YYYY-MM-DD
	Hours          float64
	Reason         string
	CertificateRef string
}

// Submit validates the input, derives the requested hours, checks the
// worker's balance and persists the request in pending status. Nothing is
// debited here: hours are reserved only at approval.
func (e *Engine) Submit(in SubmitInput) (*models.LeaveRequest, error) {
	in.Reason = strings.TrimSpace(in.Reason)

	req := models.LeaveRequest{
		OrgID:    in.OrgID,
		WorkerID: in.WorkerID,
		Kind:     in.Kind,
		Reason:   in.Reason,
		Status:   models.LeaveStatusPending,
	}

	switch in.Kind {
	case models.LeaveVacation, models.LeaveSickLeave:
		start, end, err := parseRange(in.DateFrom, in.DateTo)
		if err != nil {
			return nil, err
		}
		if in.Kind == models.LeaveSickLeave && strings.TrimSpace(in.CertificateRef) == "" {
			return nil, invalid("certificate_ref", "certificate required")
		}
		req.DateFrom = in.DateFrom
		req.DateTo = in.DateTo
		req.CertificateRef = strings.TrimSpace(in.CertificateRef)
		req.Hours = HoursForRange(start, end, e.WorkDayHours)

	case models.LeaveRol:
		if in.Hours <= 0 {
			return nil, invalid("hours", "must be positive")
		}
		if in.Reason == "" {
			return nil, invalid("reason", "required for rol")
		}
		req.Hours = in.Hours

	default:
		return nil, invalid("kind", "unknown kind: "+in.Kind)
	}

	if err := e.checkBalance(in.OrgID, in.WorkerID, in.Kind, req.Hours); err != nil {
		return nil, err
	}

	if err := e.db.Create(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	if from == "" || to == "" {
		return time.Time{}, time.Time{}, invalid("date_range", "start and end dates required")
	}
	start, err := ParseDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, invalid("date_from", "want YYYY-MM-DD")
	}
	end, err := ParseDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, invalid("date_to", "want YYYY-MM-DD")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, invalid("date_range", "end before start")
	}
	return start, end, nil
}

// checkBalance enforces hours <= balance for vacation and rol. Sick leave
// is uncapped. A missing balance row skips the check unless StrictBalance
// is set, in which case it counts as zero.
func (e *Engine) checkBalance(orgID, workerID uint, kind string, hours float64) error {
	col, debitable := balanceColumn(kind)
	if !debitable {
		return nil
	}
	b, err := e.Balance(orgID, workerID)
	if err != nil {
		return err
	}
	if b == nil {
		if e.StrictBalance {
			return ErrInsufficientBalance
		}
		return nil
	}
	have := b.VacationHours
	if col == "rol_hours" {
		have = b.RolHours
	}
	if hours > have {
		return ErrInsufficientBalance
	}
	return nil
}

// Review moves a pending request to approved or rejected. The status
// transition is a conditional update keyed on the pending status, so only
// one of two concurrent reviewers wins; the loser gets ErrInvalidState.
// On approval the balance debit runs in the same transaction: if the worker
// no longer holds enough hours the whole approval rolls back. A
// leave_response notification is emitted after commit, best effort.
func (e *Engine) Review(orgID, requestID, reviewerID uint, decision string) (*models.LeaveRequest, error) {
	if decision != models.LeaveStatusApproved && decision != models.LeaveStatusRejected {
		return nil, invalid("decision", "want approved or rejected")
	}

	var req models.LeaveRequest
	err := e.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("org_id = ?", orgID).First(&req, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if req.Status != models.LeaveStatusPending {
			return ErrInvalidState
		}

		now := time.Now()
		res := tx.Model(&models.LeaveRequest{}).
			Where("id = ? AND status = ?", req.ID, models.LeaveStatusPending).
			Updates(map[string]any{
				"status":      decision,
				"reviewer_id": reviewerID,
				"reviewed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race against another reviewer.
			return ErrInvalidState
		}
		req.Status = decision
		req.ReviewerID = &reviewerID
		req.ReviewedAt = &now

		if decision == models.LeaveStatusApproved {
			if _, debitable := balanceColumn(req.Kind); debitable {
				err := e.debitTx(tx, req.OrgID, req.WorkerID, req.Kind, req.Hours)
				switch {
				case errors.Is(err, ErrNotFound) && !e.StrictBalance:
					// No ledger configured for this worker: legacy
					// behavior treats the balance as unlimited.
				case errors.Is(err, ErrNotFound):
					return ErrInsufficientBalance
				case err != nil:
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	label := "approvata"
	if decision == models.LeaveStatusRejected {
		label = "rifiutata"
	}
	notify.Dispatch(e.db, req.OrgID, models.NotifyLeaveResponse, []uint{req.WorkerID},
		"Richiesta "+KindLabel(req.Kind),
		fmt.Sprintf("La tua richiesta di %s è stata %s.", KindLabel(req.Kind), label),
		fmt.Sprintf("leave_request:%d", req.ID))

	return &req, nil
}
