package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/contesthub/contesthub/internal/domain"
	"github.com/contesthub/contesthub/internal/httpserver/deps"
)

// Per-platform wire shapes. Each platform keeps the field vocabulary its own
// API uses, so downstream consumers written against the upstreams keep
// working against the aggregate.
type codeforcesContest struct {
	Name            string `json:"name"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	ID              string `json:"id"`
	VideoLink       string `json:"videoLink,omitempty"`
}

type leetcodeContest struct {
	Name      string `json:"name"`
	Platform  string `json:"platform"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Duration  string `json:"duration"`
	VideoLink string `json:"videoLink,omitempty"`
}

type codechefContest struct {
	ContestCode     string `json:"contest_code"`
	ContestName     string `json:"contest_name"`
	ContestStartISO string `json:"contest_start_date_iso"`
	ContestDuration string `json:"contest_duration"`
	VideoLink       string `json:"videoLink,omitempty"`
}

type contestsResponse struct {
	Codeforces        []codeforcesContest `json:"codeforces"`
	Leetcode          []leetcodeContest   `json:"leetcode"`
	Codechef          []codechefContest   `json:"codechef"`
	CodeforcesYoutube []domain.VideoEntry `json:"codeforcesYoutube"`
	LeetcodeYoutube   []domain.VideoEntry `json:"leetcodeYoutube"`
	CodechefYoutube   []domain.VideoEntry `json:"codechefYoutube"`
}

// Contests serves the raw aggregate payload from the current index snapshot.
// Failed sources show up as empty arrays, never as an error status.
func Contests(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idx := d.MemoryIndex

		resp := contestsResponse{
			Codeforces:        []codeforcesContest{},
			Leetcode:          []leetcodeContest{},
			Codechef:          []codechefContest{},
			CodeforcesYoutube: idx.Videos(domain.PlatformCodeforces),
			LeetcodeYoutube:   idx.Videos(domain.PlatformLeetCode),
			CodechefYoutube:   idx.Videos(domain.PlatformCodeChef),
		}

		for _, c := range idx.ContestsByPlatform(domain.PlatformCodeforces) {
			resp.Codeforces = append(resp.Codeforces, codeforcesContest{
				Name:            c.Name,
				StartTime:       c.StartTime.UTC().Format(time.RFC3339),
				DurationMinutes: c.DurationMinutes,
				ID:              c.SourceID,
				VideoLink:       c.VideoLink,
			})
		}

		for _, c := range idx.ContestsByPlatform(domain.PlatformLeetCode) {
			start := c.StartTime.UTC()
			resp.Leetcode = append(resp.Leetcode, leetcodeContest{
				Name:      c.Name,
				Platform:  string(c.Platform),
				Date:      start.Format("2006-01-02"),
				Time:      start.Format("15:04"),
				Duration:  strconv.Itoa(c.DurationMinutes) + " min",
				VideoLink: c.VideoLink,
			})
		}

		for _, c := range idx.ContestsByPlatform(domain.PlatformCodeChef) {
			resp.Codechef = append(resp.Codechef, codechefContest{
				ContestCode:     c.SourceID,
				ContestName:     c.Name,
				ContestStartISO: c.StartTime.UTC().Format(time.RFC3339),
				ContestDuration: strconv.Itoa(c.DurationMinutes),
				VideoLink:       c.VideoLink,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
