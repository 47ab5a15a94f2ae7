package leave

import (
	"errors"
	"testing"

	"github.com/lmoretti/workcrew-backend/database"
	"github.com/lmoretti/workcrew-backend/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	db, err := database.OpenTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return NewEngine(db)
}

func TestBalanceAbsentIsNotAnError(t *testing.T) {
	e := newTestEngine(t)

	b, err := e.Balance(1, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != nil {
		t.Fatalf("expected nil balance, got %+v", b)
	}
}

func TestSetBalanceUpsertIsIdempotent(t *testing.T) {
	e := newTestEngine(t)

	if _, err := e.SetBalance(1, 7, 40, 8); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if _, err := e.SetBalance(1, 7, 40, 8); err != nil {
		t.Fatalf("second set: %v", err)
	}

	b, err := e.Balance(1, 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if b == nil || b.VacationHours != 40 || b.RolHours != 8 {
		t.Fatalf("expected (40, 8), got %+v", b)
	}

	var n int64
	if err := e.db.Model(&models.LeaveBalance{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected exactly 1 row, got %d", n)
	}
}

func TestSetBalanceOverwritesPreviousValues(t *testing.T) {
	e := newTestEngine(t)

	if _, err := e.SetBalance(1, 7, 40, 8); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := e.SetBalance(1, 7, 16, 2); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	b, _ := e.Balance(1, 7)
	if b.VacationHours != 16 || b.RolHours != 2 {
		t.Fatalf("expected (16, 2), got %+v", b)
	}
}

func TestSetBalanceRejectsNegative(t *testing.T) {
	e := newTestEngine(t)

	var ve *ValidationError
	if _, err := e.SetBalance(1, 7, -1, 0); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, err := e.SetBalance(1, 7, 0, -0.5); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSetBalanceIsScopedPerOrg(t *testing.T) {
	e := newTestEngine(t)

	if _, err := e.SetBalance(1, 7, 40, 8); err != nil {
		t.Fatalf("org 1: %v", err)
	}
	if _, err := e.SetBalance(2, 7, 10, 0); err != nil {
		t.Fatalf("org 2: %v", err)
	}

	b1, _ := e.Balance(1, 7)
	b2, _ := e.Balance(2, 7)
	if b1.VacationHours != 40 || b2.VacationHours != 10 {
		t.Fatalf("org scoping broken: %+v %+v", b1, b2)
	}
}

func TestDebit(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.SetBalance(1, 7, 40, 8); err != nil {
		t.Fatalf("set: %v", err)
	}

	if err := e.Debit(1, 7, models.LeaveVacation, 16); err != nil {
		t.Fatalf("debit: %v", err)
	}
	b, _ := e.Balance(1, 7)
	if b.VacationHours != 24 || b.RolHours != 8 {
		t.Fatalf("expected (24, 8), got %+v", b)
	}

	// Exactly draining the counter is allowed.
	if err := e.Debit(1, 7, models.LeaveRol, 8); err != nil {
		t.Fatalf("drain rol: %v", err)
	}
	b, _ = e.Balance(1, 7)
	if b.RolHours != 0 {
		t.Fatalf("expected rol 0, got %v", b.RolHours)
	}
}

func TestDebitInsufficientLeavesBalanceUntouched(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.SetBalance(1, 7, 10, 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	if err := e.Debit(1, 7, models.LeaveVacation, 10.5); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	b, _ := e.Balance(1, 7)
	if b.VacationHours != 10 {
		t.Fatalf("balance changed on failed debit: %v", b.VacationHours)
	}
}

func TestDebitMissingRow(t *testing.T) {
	e := newTestEngine(t)

	if err := e.Debit(1, 7, models.LeaveVacation, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDebitRejectsSickLeave(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.SetBalance(1, 7, 40, 8); err != nil {
		t.Fatalf("set: %v", err)
	}

	var ve *ValidationError
	if err := e.Debit(1, 7, models.LeaveSickLeave, 8); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
