package leave

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDaysInclusive(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day", "2026-03-02", "2026-03-02", 1},
		{"two days", "2026-03-02", "2026-03-03", 2},
		{"full week", "2026-03-02", "2026-03-08", 7},
		{"across month end", "2026-01-30", "2026-02-02", 4},
		{"across leap day", "2028-02-28", "2028-03-01", 3},
		{"across year end", "2026-12-30", "2027-01-02", 4},
		{"end before start", "2026-03-03", "2026-03-02", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DaysInclusive(date(tc.start), date(tc.end))
			if got != tc.want {
				t.Fatalf("DaysInclusive(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestDaysInclusiveIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, 3, 2, 23, 59, 0, 0, time.UTC)
	end := time.Date(2026, 3, 3, 0, 1, 0, 0, time.UTC)
	if got := DaysInclusive(start, end); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestHoursForRange(t *testing.T) {
	cases := []struct {
		name         string
		start, end   string
		workDayHours float64
		want         float64
	}{
		{"single day default", "2026-03-02", "2026-03-02", 8, 8},
		{"two days default", "2026-03-02", "2026-03-03", 8, 16},
		{"part-time day", "2026-03-02", "2026-03-03", 6, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HoursForRange(date(tc.start), date(tc.end), tc.workDayHours)
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestKindLabel(t *testing.T) {
	cases := map[string]string{
		"vacation":   "Ferie",
		"rol":        "ROL",
		"sick_leave": "Malattia",
		"other":      "other",
	}
	for kind, want := range cases {
		if got := KindLabel(kind); got != want {
			t.Errorf("KindLabel(%q) = %q, want %q", kind, got, want)
		}
	}
}
