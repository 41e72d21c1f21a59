package domain

import (
	"fmt"
	"testing"
	"time"
)

func TestClassifyUpcoming(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		duration int
		want     string
	}{
		{
			name:     "days hours minutes",
			start:    now.Add(2*24*time.Hour + 3*time.Hour + 40*time.Minute),
			duration: 120,
			want:     "2d 3h 40m until start",
		},
		{
			name:     "under one minute",
			start:    now.Add(30 * time.Second),
			duration: 90,
			want:     "0d 0h 0m until start",
		},
		{
			name:     "exactly one day",
			start:    now.Add(24 * time.Hour),
			duration: 0,
			want:     "1d 0h 0m until start",
		},
		{
			name:     "hours not carried into days",
			start:    now.Add(23*time.Hour + 59*time.Minute),
			duration: 60,
			want:     "0d 23h 59m until start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(now, tt.start, tt.duration)
			if got.Status != StatusUpcoming {
				t.Errorf("Classify() status = %v, want %v", got.Status, StatusUpcoming)
			}
			if got.Description != tt.want {
				t.Errorf("Classify() description = %q, want %q", got.Description, tt.want)
			}
		})
	}
}

func TestClassifyOngoing(t *testing.T) {
	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		duration int
		want     string
	}{
		{
			name:     "start boundary is inclusive",
			now:      start,
			duration: 120,
			want:     "Ongoing: 2h 0m remaining",
		},
		{
			name:     "end boundary is inclusive",
			now:      start.Add(120 * time.Minute),
			duration: 120,
			want:     "Ongoing: 0h 0m remaining",
		},
		{
			name:     "midway through",
			now:      start.Add(45 * time.Minute),
			duration: 180,
			want:     "Ongoing: 2h 15m remaining",
		},
		{
			name:     "zero duration at start instant",
			now:      start,
			duration: 0,
			want:     "Ongoing: 0h 0m remaining",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.now, start, tt.duration)
			if got.Status != StatusOngoing {
				t.Errorf("Classify() status = %v, want %v", got.Status, StatusOngoing)
			}
			if got.Description != tt.want {
				t.Errorf("Classify() description = %q, want %q", got.Description, tt.want)
			}
		})
	}
}

func TestClassifyPast(t *testing.T) {
	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		duration int
	}{
		{name: "just after end", now: start.Add(121 * time.Minute), duration: 120},
		{name: "long after end", now: start.Add(40 * 24 * time.Hour), duration: 120},
		{name: "zero duration just after start", now: start.Add(time.Second), duration: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.now, start, tt.duration)
			if got.Status != StatusPast {
				t.Errorf("Classify() status = %v, want %v", got.Status, StatusPast)
			}
			if got.Description != "Contest ended" {
				t.Errorf("Classify() description = %q, want %q", got.Description, "Contest ended")
			}
		})
	}
}

// The remainder arithmetic must agree with floor division on the raw
// millisecond difference for any non-negative horizon.
func TestClassifyRemainderConsistency(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	horizons := []time.Duration{
		time.Minute,
		59 * time.Minute,
		25 * time.Hour,
		72*time.Hour + 12*time.Minute,
		100*24*time.Hour + 5*time.Hour + 59*time.Minute,
	}

	for _, h := range horizons {
		start := now.Add(h)
		got := Classify(now, start, 0)

		ms := h.Milliseconds()
		var days, hours, minutes int64
		if n, err := fmt.Sscanf(got.Description, "%dd %dh %dm until start", &days, &hours, &minutes); err != nil || n != 3 {
			t.Fatalf("Classify() description %q not parseable: %v", got.Description, err)
		}

		if days != ms/msPerDay || hours != (ms%msPerDay)/msPerHour || minutes != (ms%msPerHour)/msPerMinute {
			t.Errorf("Classify() for %v = %dd %dh %dm, inconsistent with floor arithmetic", h, days, hours, minutes)
		}
		if days < 0 || hours < 0 || minutes < 0 {
			t.Errorf("Classify() for %v produced negative component: %q", h, got.Description)
		}
	}
}
