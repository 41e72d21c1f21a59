package domain

import (
	"fmt"
	"strings"
	"time"
)

// Platform identifies one of the supported contest providers.
type Platform string

const (
	PlatformCodeforces Platform = "Codeforces"
	PlatformLeetCode   Platform = "LeetCode"
	PlatformCodeChef   Platform = "CodeChef"
)

// Platforms lists all supported platforms in aggregation order.
var Platforms = []Platform{PlatformCodeforces, PlatformLeetCode, PlatformCodeChef}

// ParsePlatform maps a user-supplied name to a Platform.
// Matching is case-insensitive; unknown names return false.
func ParsePlatform(s string) (Platform, bool) {
	for _, p := range Platforms {
		if strings.EqualFold(string(p), s) {
			return p, true
		}
	}
	return "", false
}

// Contest is the normalized record every source adapter produces.
//
// StartTime is always a valid absolute instant: adapters discard records
// whose start time cannot be parsed instead of emitting a malformed one.
type Contest struct {
	Name            string    `json:"name"`
	Platform        Platform  `json:"platform"`
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes,omitempty"`
	SourceID        string    `json:"sourceId,omitempty"`
	VideoLink       string    `json:"videoLink,omitempty"`
}

// Key returns the composite identity used for bookmarks and solution links.
//
// Two contests with the same platform, name and start date collide on
// purpose: the key is stable across refresh cycles, which a surrogate id
// rebuilt every minute would not be.
func (c Contest) Key() string {
	return fmt.Sprintf("%s-%s-%s", c.Platform, c.Name, c.StartTime.UTC().Format("2006-01-02"))
}

// VideoEntry is one item of a solution playlist.
type VideoEntry struct {
	Title    string `json:"title"`
	VideoID  string `json:"videoId"`
	VideoURL string `json:"videoUrl"`
}
