package gamify

import (
	"testing"
	"time"
)

func TestLocalDate(t *testing.T) {
	at := time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)
	if got := localDate(at); got != "2026-03-10" {
		t.Errorf("localDate = %q", got)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		last string
		now  time.Time
		want int
	}{
		{"2026-03-10", time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local), 0},
		{"2026-03-10", time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local), 0},
		// Late night then early morning is still one calendar day apart.
		{"2026-03-10", time.Date(2026, 3, 11, 0, 5, 0, 0, time.Local), 1},
		{"2026-03-10", time.Date(2026, 3, 12, 8, 0, 0, 0, time.Local), 2},
		{"2026-03-10", time.Date(2026, 4, 10, 8, 0, 0, 0, time.Local), 31},
	}
	for _, tt := range tests {
		got, ok := daysBetween(tt.last, tt.now)
		if !ok {
			t.Errorf("daysBetween(%q) not ok", tt.last)
			continue
		}
		if got != tt.want {
			t.Errorf("daysBetween(%q, %v) = %d, want %d", tt.last, tt.now, got, tt.want)
		}
	}
}

func TestDaysBetweenMalformed(t *testing.T) {
	if _, ok := daysBetween("not-a-date", time.Now()); ok {
		t.Error("malformed stored date should not parse")
	}
}
