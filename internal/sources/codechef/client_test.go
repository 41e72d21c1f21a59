package codechef

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/contesthub/contesthub/internal/logger"
)

var testLog = logger.New("error", false)

func TestFetchContestsFutureThenPast(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"future_contests": [
				{"contest_code": "START124", "contest_name": "Starters 124", "contest_start_date": "20 Mar 2025 20:00:00", "contest_start_date_iso": "2025-03-20T20:00:00+05:30", "contest_duration": "120"}
			],
			"past_contests": [
				{"contest_code": "START123", "contest_name": "Starters 123", "contest_start_date": "13 Mar 2025 20:00:00", "contest_start_date_iso": "2025-03-13T20:00:00+05:30", "contest_duration": "120"},
				{"contest_code": "COOK155", "contest_name": "Cook-Off 155", "contest_start_date": "09 Mar 2025 20:00:00", "contest_start_date_iso": "", "contest_duration": "150"},
				{"contest_code": "BAD1", "contest_name": "Broken Contest", "contest_start_date": "not a date", "contest_start_date_iso": "", "contest_duration": "120"}
			]
		}`))
	}))
	defer ts.Close()

	client := New(ts.URL, testLog)
	contests := client.FetchContests(context.Background())

	// Broken Contest is discarded, not defaulted to "now".
	if len(contests) != 3 {
		t.Fatalf("FetchContests() returned %d contests, want 3", len(contests))
	}

	if contests[0].SourceID != "START124" {
		t.Errorf("contests[0] = %q, want future contest first", contests[0].SourceID)
	}

	// ISO field preferred: 20:00 +05:30 is 14:30 UTC.
	wantStart := time.Date(2025, 3, 20, 14, 30, 0, 0, time.UTC)
	if !contests[0].StartTime.Equal(wantStart) {
		t.Errorf("startTime = %v, want %v (from ISO field)", contests[0].StartTime, wantStart)
	}

	// Missing ISO field falls back to the legacy format.
	wantFallback := time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC)
	if !contests[2].StartTime.Equal(wantFallback) {
		t.Errorf("fallback startTime = %v, want %v", contests[2].StartTime, wantFallback)
	}

	if contests[2].DurationMinutes != 150 {
		t.Errorf("durationMinutes = %d, want 150", contests[2].DurationMinutes)
	}
}

func TestFetchContestsUnparsableDurationKept(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"future_contests": [],
			"past_contests": [
				{"contest_code": "X", "contest_name": "Odd Duration", "contest_start_date_iso": "2025-03-01T10:00:00Z", "contest_duration": "tbd"}
			]
		}`))
	}))
	defer ts.Close()

	client := New(ts.URL, testLog)
	contests := client.FetchContests(context.Background())

	// Duration is optional; only the start instant is load-bearing.
	if len(contests) != 1 {
		t.Fatalf("FetchContests() returned %d contests, want 1", len(contests))
	}
	if contests[0].DurationMinutes != 0 {
		t.Errorf("durationMinutes = %d, want 0 for unparsable duration", contests[0].DurationMinutes)
	}
}

func TestFetchContestsFailureYieldsEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := New(ts.URL, testLog)
	if got := client.FetchContests(context.Background()); len(got) != 0 {
		t.Errorf("FetchContests() = %d contests, want 0", len(got))
	}
}
