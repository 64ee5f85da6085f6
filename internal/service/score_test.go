package service

import (
	"testing"
	"time"
)

func TestBandScore(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    float64
	}{
		{"perfect", 20, 20, 9.0},
		{"ninety percent boundary", 18, 20, 9.0},
		{"eighty five percent", 17, 20, 8.5},
		{"fifteen of twenty", 15, 20, 8.0},
		{"sixty percent boundary", 12, 20, 7.0},
		{"fifty seven and a half percent", 23, 40, 6.5},
		{"forty five percent boundary", 9, 20, 6.0},
		{"thirty percent boundary", 6, 20, 5.0},
		{"five percent boundary", 1, 20, 3.0},
		{"below lowest threshold", 1, 40, 2.5},
		{"zero correct", 0, 20, 2.5},
		{"single question correct", 1, 1, 9.0},
		{"single question wrong", 0, 1, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BandScore(tt.correct, tt.total); got != tt.want {
				t.Errorf("BandScore(%d, %d) = %v, want %v", tt.correct, tt.total, got, tt.want)
			}
		})
	}
}

func TestNextStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	day := func(offset int, hour int) *time.Time {
		d := now.AddDate(0, 0, offset)
		d = time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
		return &d
	}

	tests := []struct {
		name    string
		current int
		last    *time.Time
		want    int
	}{
		{"first activity ever", 0, nil, 1},
		{"same day keeps streak", 5, day(0, 1), 5},
		{"yesterday extends streak", 5, day(-1, 23), 6},
		{"yesterday late night still counts", 1, day(-1, 23), 2},
		{"two days ago resets", 7, day(-2, 9), 1},
		{"week gap resets", 30, day(-7, 9), 1},
		{"future date keeps streak", 3, day(1, 9), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStreak(tt.current, tt.last, now); got != tt.want {
				t.Errorf("NextStreak(%d, %v) = %d, want %d", tt.current, tt.last, got, tt.want)
			}
		})
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC)
	to := time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)

	if got := daysBetween(from, to); got != 1 {
		t.Errorf("daysBetween across midnight = %d, want 1", got)
	}
}

func TestMinutesFromSeconds(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    int
	}{
		{"exact minute", 60, 1},
		{"rounds up at half", 90, 2},
		{"rounds down below half", 89, 1},
		{"under half a minute", 20, 0},
		{"forty minutes", 2400, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := minutesFromSeconds(tt.seconds); got != tt.want {
				t.Errorf("minutesFromSeconds(%d) = %d, want %d", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  True ", "true"},
		{"PARIS", "paris"},
		{"\tnot given\n", "not given"},
		{"B", "b"},
	}

	for _, tt := range tests {
		if got := normalizeAnswer(tt.in); got != tt.want {
			t.Errorf("normalizeAnswer(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
