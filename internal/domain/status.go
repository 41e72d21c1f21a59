package domain

import (
	"fmt"
	"time"
)

// Status is the temporal state of a contest relative to the current clock.
// It is computed on every render pass and never stored.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusOngoing  Status = "ongoing"
	StatusPast     Status = "past"
)

// TimeInfo is the result of classifying a contest against a clock.
type TimeInfo struct {
	Status      Status `json:"status"`
	Description string `json:"description"`
}

const (
	msPerMinute = int64(60 * 1000)
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Classify computes the status of a contest and a human-readable countdown.
//
// The description uses floor division on the millisecond difference with
// hours and minutes as remainders within the day and hour, not totals.
// A missing duration is treated as zero, so a contest with no duration is
// ongoing only at the exact start instant.
func Classify(now, start time.Time, durationMinutes int) TimeInfo {
	if now.Before(start) {
		diff := start.Sub(now).Milliseconds()
		days := diff / msPerDay
		hours := (diff % msPerDay) / msPerHour
		minutes := (diff % msPerHour) / msPerMinute
		return TimeInfo{
			Status:      StatusUpcoming,
			Description: fmt.Sprintf("%dd %dh %dm until start", days, hours, minutes),
		}
	}

	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	if !now.After(end) {
		diff := end.Sub(now).Milliseconds()
		hours := (diff % msPerDay) / msPerHour
		minutes := (diff % msPerHour) / msPerMinute
		return TimeInfo{
			Status:      StatusOngoing,
			Description: fmt.Sprintf("Ongoing: %dh %dm remaining", hours, minutes),
		}
	}

	return TimeInfo{
		Status:      StatusPast,
		Description: "Contest ended",
	}
}
