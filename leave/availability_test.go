package leave

import (
	"testing"

	"github.com/lmoretti/workcrew-backend/models"
)

func approvedReq(worker uint, kind, from, to, reason string) models.LeaveRequest {
	return models.LeaveRequest{
		WorkerID: worker, Kind: kind,
		DateFrom: from, DateTo: to, Reason: reason,
		Status: models.LeaveStatusApproved,
	}
}

func TestIsDateInLeave(t *testing.T) {
	requests := []models.LeaveRequest{
		approvedReq(7, models.LeaveVacation, "2026-03-02", "2026-03-03", ""),
		{WorkerID: 7, Kind: models.LeaveVacation, DateFrom: "2026-04-01", DateTo: "2026-04-10", Status: models.LeaveStatusPending},
		{WorkerID: 7, Kind: models.LeaveVacation, DateFrom: "2026-05-01", DateTo: "2026-05-10", Status: models.LeaveStatusRejected},
	}

	cases := []struct {
		name   string
		worker uint
		day    string
		want   bool
	}{
		{"start boundary inclusive", 7, "2026-03-02", true},
		{"end boundary inclusive", 7, "2026-03-03", true},
		{"day before", 7, "2026-03-01", false},
		{"day after", 7, "2026-03-04", false},
		{"pending ignored", 7, "2026-04-05", false},
		{"rejected ignored", 7, "2026-05-05", false},
		{"other worker", 8, "2026-03-02", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsDateInLeave(requests, tc.worker, date(tc.day))
			if got != tc.want {
				t.Fatalf("IsDateInLeave(%d, %s) = %v, want %v", tc.worker, tc.day, got, tc.want)
			}
		})
	}
}

func TestIsDateInLeaveDiscardsTimeOfDay(t *testing.T) {
	requests := []models.LeaveRequest{
		approvedReq(7, models.LeaveVacation, "2026-03-02", "2026-03-02", ""),
	}
	at := date("2026-03-02").Add(23*60*60*1e9 + 59*60*1e9)
	if !IsDateInLeave(requests, 7, at) {
		t.Fatal("late-evening timestamp on the leave day must still match")
	}
}

func TestComputeAvailability(t *testing.T) {
	workers := []models.Worker{
		{ID: 7, FirstName: "Anna"},
		{ID: 8, FirstName: "Luca"},
		{ID: 9, FirstName: "Sara"},
	}
	approved := []models.LeaveRequest{
		approvedReq(7, models.LeaveVacation, "2026-03-02", "2026-03-03", ""),
		approvedReq(9, models.LeaveSickLeave, "2026-03-01", "2026-03-05", "influenza"),
	}

	entries := ComputeAvailability(workers, approved, date("2026-03-02"))
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	byWorker := map[uint]AvailabilityEntry{}
	for _, e := range entries {
		byWorker[e.WorkerID] = e
	}

	if e := byWorker[7]; e.Available || e.Label != "Ferie" || e.BackOn != "2026-03-03" {
		t.Fatalf("worker 7: %+v", e)
	}
	if e := byWorker[8]; !e.Available || e.Label != "" || e.BackOn != "" {
		t.Fatalf("worker 8 should be free: %+v", e)
	}
	if e := byWorker[9]; e.Available || e.Label != "Malattia - influenza" || e.BackOn != "2026-03-05" {
		t.Fatalf("worker 9: %+v", e)
	}
}

func TestComputeAvailabilityPendingDoesNotBlock(t *testing.T) {
	workers := []models.Worker{{ID: 7}}
	pending := []models.LeaveRequest{{
		WorkerID: 7, Kind: models.LeaveVacation,
		DateFrom: "2026-03-02", DateTo: "2026-03-03",
		Status: models.LeaveStatusPending,
	}}

	entries := ComputeAvailability(workers, pending, date("2026-03-02"))
	if !entries[0].Available {
		t.Fatal("pending request must not make a worker unavailable")
	}
}

func TestComputeAvailabilityEmptyInputs(t *testing.T) {
	workers := []models.Worker{{ID: 7}, {ID: 8}}

	entries := ComputeAvailability(workers, nil, date("2026-03-02"))
	for _, e := range entries {
		if !e.Available {
			t.Fatalf("no requests: everyone available, got %+v", e)
		}
	}

	if got := ComputeAvailability(nil, nil, date("2026-03-02")); len(got) != 0 {
		t.Fatalf("no workers: expected empty slice, got %d entries", len(got))
	}
}

func TestApprovedRequestsWindow(t *testing.T) {
	e := newTestEngine(t)
	seed := []models.LeaveRequest{
		{OrgID: 1, WorkerID: 7, Kind: models.LeaveVacation, DateFrom: "2026-03-02", DateTo: "2026-03-06", Status: models.LeaveStatusApproved},
		{OrgID: 1, WorkerID: 8, Kind: models.LeaveVacation, DateFrom: "2026-03-10", DateTo: "2026-03-12", Status: models.LeaveStatusApproved},
		{OrgID: 1, WorkerID: 9, Kind: models.LeaveVacation, DateFrom: "2026-03-04", DateTo: "2026-03-05", Status: models.LeaveStatusPending},
		{OrgID: 2, WorkerID: 7, Kind: models.LeaveVacation, DateFrom: "2026-03-04", DateTo: "2026-03-05", Status: models.LeaveStatusApproved},
	}
	if err := e.db.Create(&seed).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	rows, err := e.ApprovedRequests(1, "2026-03-04", "2026-03-05")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 1 || rows[0].WorkerID != 7 {
		t.Fatalf("expected only worker 7's overlapping approved request, got %+v", rows)
	}

	all, err := e.ApprovedRequests(1, "", "")
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 approved rows for org 1, got %d", len(all))
	}
}

func TestComputeAvailabilityRolWithoutDatesNeverMatches(t *testing.T) {
	workers := []models.Worker{{ID: 7}}
	approved := []models.LeaveRequest{{
		WorkerID: 7, Kind: models.LeaveRol, Hours: 4,
		Status: models.LeaveStatusApproved,
	}}

	entries := ComputeAvailability(workers, approved, date("2026-03-02"))
	if !entries[0].Available {
		t.Fatal("a dateless rol grant must not shade the calendar")
	}
}
