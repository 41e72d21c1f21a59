package domain

import (
	"sort"
	"time"
)

// RenderedContest is a contest as handed to the rendering sink: classified,
// flagged with bookmark membership and carrying its effective video link.
type RenderedContest struct {
	Contest
	Key         string `json:"key"`
	Status      Status `json:"status"`
	TimeDisplay string `json:"timeDisplay"`
	Bookmarked  bool   `json:"bookmarked"`
}

// View is the full render payload: two ordered partitions, or an empty-state
// signal when no platform is selected.
type View struct {
	Empty    bool              `json:"empty"`
	Message  string            `json:"message,omitempty"`
	Upcoming []RenderedContest `json:"upcoming"`
	Past     []RenderedContest `json:"past"`
}

// BuildView filters contests to the selected platforms, classifies each one
// against now, partitions upcoming+ongoing from past and orders both
// partitions (soonest first, most recent past first).
//
// A manually entered solution link takes precedence over an auto-matched one:
// it represents explicit operator intent.
func BuildView(now time.Time, contests []Contest, platforms []Platform, bookmarks map[string]bool, solutions map[string]string) View {
	if len(platforms) == 0 {
		return View{
			Empty:   true,
			Message: "Please select at least one platform.",
		}
	}

	selected := make(map[Platform]bool, len(platforms))
	for _, p := range platforms {
		selected[p] = true
	}

	view := View{
		Upcoming: []RenderedContest{},
		Past:     []RenderedContest{},
	}

	for _, c := range contests {
		if !selected[c.Platform] {
			continue
		}

		key := c.Key()
		if link, ok := solutions[key]; ok && link != "" {
			c.VideoLink = link
		}

		info := Classify(now, c.StartTime, c.DurationMinutes)
		rendered := RenderedContest{
			Contest:     c,
			Key:         key,
			Status:      info.Status,
			TimeDisplay: info.Description,
			Bookmarked:  bookmarks[key],
		}

		if info.Status == StatusPast {
			view.Past = append(view.Past, rendered)
		} else {
			view.Upcoming = append(view.Upcoming, rendered)
		}
	}

	sort.SliceStable(view.Upcoming, func(i, j int) bool {
		return view.Upcoming[i].StartTime.Before(view.Upcoming[j].StartTime)
	})
	sort.SliceStable(view.Past, func(i, j int) bool {
		return view.Past[i].StartTime.After(view.Past[j].StartTime)
	})

	return view
}

// BuildBookmarkedView runs the same pipeline restricted to bookmarked keys,
// across all platforms.
func BuildBookmarkedView(now time.Time, contests []Contest, bookmarks map[string]bool, solutions map[string]string) View {
	marked := make([]Contest, 0, len(bookmarks))
	for _, c := range contests {
		if bookmarks[c.Key()] {
			marked = append(marked, c)
		}
	}
	return BuildView(now, marked, Platforms, bookmarks, solutions)
}
