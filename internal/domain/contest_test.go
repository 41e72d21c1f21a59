package domain

import (
	"testing"
	"time"
)

func TestContestKey(t *testing.T) {
	c := Contest{
		Name:      "Weekly Contest 390",
		Platform:  PlatformLeetCode,
		StartTime: time.Date(2025, 3, 9, 2, 30, 0, 0, time.UTC),
	}

	want := "LeetCode-Weekly Contest 390-2025-03-09"
	if got := c.Key(); got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
}

func TestContestKeyUsesUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	// 23:30 local on March 9 is already March 9 in UTC terms only if the
	// offset keeps it on the same calendar day; here it rolls back.
	c := Contest{
		Name:      "Starters 123",
		Platform:  PlatformCodeChef,
		StartTime: time.Date(2025, 3, 10, 8, 30, 0, 0, loc), // 23:30 UTC March 9
	}

	want := "CodeChef-Starters 123-2025-03-09"
	if got := c.Key(); got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in     string
		want   Platform
		wantOK bool
	}{
		{"Codeforces", PlatformCodeforces, true},
		{"codeforces", PlatformCodeforces, true},
		{"LEETCODE", PlatformLeetCode, true},
		{"CodeChef", PlatformCodeChef, true},
		{"topcoder", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePlatform(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParsePlatform(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
