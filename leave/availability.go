package leave

import (
	"time"

	"github.com/lmoretti/workcrew-backend/models"
)

// AvailabilityEntry is the per-worker calendar cell for one date.
type AvailabilityEntry struct {
	WorkerID  uint `json:"worker_id"`
	Available bool `json:"available"`
	// Label and BackOn are filled only when unavailable: the leave kind
	// label (plus the reason, when present) and the leave's end date.
	Label  string `json:"label,omitempty"`
	BackOn string `json:"back_on,omitempty"` // YYYY-MM-DD, last leave day
}

// requestCovers reports whether the request's [DateFrom, DateTo] interval
// contains the date, both endpoints included, at day granularity. Dates are
// YYYY-MM-DD strings, so the comparison is lexicographic.
func requestCovers(r *models.LeaveRequest, date string) bool {
	if r.DateFrom == "" || r.DateTo == "" {
		return false
	}
	return r.DateFrom <= date && date <= r.DateTo
}

// ComputeAvailability projects per-worker availability for one date out of
// the approved requests. Pure and total: an empty request list yields
// "available" for everyone; non-approved requests are ignored.
func ComputeAvailability(workers []models.Worker, approved []models.LeaveRequest, onDate time.Time) []AvailabilityEntry {
	date := DateOnly(onDate).Format(dateLayout)

	out := make([]AvailabilityEntry, 0, len(workers))
	for _, w := range workers {
		entry := AvailabilityEntry{WorkerID: w.ID, Available: true}
		for i := range approved {
			r := &approved[i]
			if r.WorkerID != w.ID || r.Status != models.LeaveStatusApproved {
				continue
			}
			if requestCovers(r, date) {
				entry.Available = false
				entry.Label = KindLabel(r.Kind)
				if r.Reason != "" {
					entry.Label += " - " + r.Reason
				}
				entry.BackOn = r.DateTo
				break
			}
		}
		out = append(out, entry)
	}
	return out
}

// IsDateInLeave reports whether the worker has an approved leave covering
// the date. Used for calendar-cell shading.
func IsDateInLeave(requests []models.LeaveRequest, workerID uint, onDate time.Time) bool {
	date := DateOnly(onDate).Format(dateLayout)
	for i := range requests {
		r := &requests[i]
		if r.WorkerID != workerID || r.Status != models.LeaveStatusApproved {
			continue
		}
		if requestCovers(r, date) {
			return true
		}
	}
	return false
}

// ApprovedRequests loads the approved requests of an organization that
// overlap the [from, to] date window (YYYY-MM-DD strings). An empty window
// loads all approved requests of the org.
func (e *Engine) ApprovedRequests(orgID uint, from, to string) ([]models.LeaveRequest, error) {
	tx := e.db.Where("org_id = ? AND status = ?", orgID, models.LeaveStatusApproved)
	if from != "" && to != "" {
		tx = tx.Where("date_from <= ? AND date_to >= ?", to, from)
	}
	var rows []models.LeaveRequest
	if err := tx.Order("date_from ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
