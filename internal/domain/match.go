package domain

import (
	"regexp"
	"strings"
	"time"
)

// Matching is case-insensitive substring work throughout. Each platform has
// its own naming conventions (round numbers, divisions, series identifiers),
// plus a platform fallback built on name/title containment for names that
// carry no identifier; a generic significant-word stage runs last. The first
// candidate satisfying a predicate in source order wins, there is no scoring
// between multiple matches.

var (
	codechefSeriesRe = regexp.MustCompile(`(?i)(starters|cook-off|lunchtime)\s*(\d+)`)
	cfRoundRe        = regexp.MustCompile(`(?i)round\s*#?\s*(\d+)`)
	cfDivRe          = regexp.MustCompile(`(?i)div\.?\s*(\d+)`)
	lcContestRe      = regexp.MustCompile(`(?i)(weekly|biweekly)\s*contest\s*#?\s*(\d+)`)
)

// stopWords are tokens too generic to identify a contest on their own.
var stopWords = map[string]struct{}{
	"the":      {},
	"and":      {},
	"for":      {},
	"div":      {},
	"with":     {},
	"solution": {},
	"round":    {},
}

// MatchVideo finds the best-matching solution video for a contest, or nil.
// Contests that have not started yet are never auto-linked.
//
// When the contest name carries a platform identifier (round number, contest
// number, series name) the identifier rule is authoritative: a candidate list
// that fails it yields no match, the later stages do not get a second try.
// Names without an identifier go through the platform's containment fallback
// first and the generic significant-word stage after that.
func MatchVideo(now time.Time, c Contest, videos []VideoEntry) *VideoEntry {
	if c.StartTime.After(now) {
		return nil
	}

	var (
		pred       func(title string) bool
		identifier bool
	)
	switch c.Platform {
	case PlatformCodeChef:
		pred, identifier = codechefPredicate(c.Name)
	case PlatformCodeforces:
		pred, identifier = codeforcesPredicate(c.Name)
	case PlatformLeetCode:
		pred, identifier = leetcodePredicate(c.Name)
	}

	if pred != nil {
		for i := range videos {
			if pred(videos[i].Title) {
				return &videos[i]
			}
		}
		if identifier {
			return nil
		}
	}
	return genericMatch(c, videos)
}

// codechefPredicate matches on the contest-series identifier (Starters 123,
// Cook-Off 45, Lunchtime 90). Names without one fall back to whole-name
// containment in either direction. The second result reports whether the
// identifier rule applies.
func codechefPredicate(name string) (func(string) bool, bool) {
	platform := strings.ToLower(string(PlatformCodeChef))

	if m := codechefSeriesRe.FindStringSubmatch(name); m != nil {
		ident := strings.ToLower(m[1]) + " " + m[2]
		return func(title string) bool {
			t := strings.ToLower(codechefSeriesRe.ReplaceAllString(title, "$1 $2"))
			return strings.Contains(t, platform) && strings.Contains(t, ident)
		}, true
	}

	lname := strings.ToLower(name)
	return func(title string) bool {
		t := strings.ToLower(title)
		return strings.Contains(t, platform) && (strings.Contains(t, lname) || strings.Contains(lname, t))
	}, false
}

// codeforcesPredicate matches on round number and, when the contest name
// carries one, the division. Names without a round number fall back to
// whole-name containment, then to any name word longer than three characters.
func codeforcesPredicate(name string) (func(string) bool, bool) {
	platform := strings.ToLower(string(PlatformCodeforces))

	if m := cfRoundRe.FindStringSubmatch(name); m != nil {
		round := "round " + m[1]
		div := ""
		if dm := cfDivRe.FindStringSubmatch(name); dm != nil {
			div = "div " + dm[1]
		}
		return func(title string) bool {
			// Normalize "Round #920" and "Div. 3" spellings before the
			// substring checks.
			t := cfRoundRe.ReplaceAllString(title, "round $1")
			t = cfDivRe.ReplaceAllString(t, "div $1")
			t = strings.ToLower(t)
			if !strings.Contains(t, platform) || !strings.Contains(t, round) {
				return false
			}
			return div == "" || strings.Contains(t, div)
		}, true
	}

	lname := strings.ToLower(name)
	words := nameTokens(lname)
	return func(title string) bool {
		t := strings.ToLower(title)
		if !strings.Contains(t, platform) {
			return false
		}
		if strings.Contains(t, lname) {
			return true
		}
		for _, w := range words {
			if strings.Contains(t, w) {
				return true
			}
		}
		return false
	}, false
}

// leetcodePredicate matches on the weekly/biweekly contest number. Names
// without one fall back to whole-name containment, checking the title both
// as-is and with the platform name stripped.
func leetcodePredicate(name string) (func(string) bool, bool) {
	platform := strings.ToLower(string(PlatformLeetCode))

	if m := lcContestRe.FindStringSubmatch(name); m != nil {
		n := m[2]
		return func(title string) bool {
			t := strings.ToLower(title)
			if !strings.Contains(t, platform) {
				return false
			}
			return strings.Contains(t, "contest "+n) || strings.Contains(t, "#"+n)
		}, true
	}

	lname := strings.ToLower(name)
	return func(title string) bool {
		t := strings.ToLower(title)
		if !strings.Contains(t, platform) {
			return false
		}
		if strings.Contains(t, lname) {
			return true
		}
		stripped := strings.TrimSpace(strings.ReplaceAll(t, platform, ""))
		return stripped != "" && strings.Contains(lname, stripped)
	}, false
}

// genericMatch is the last-resort stage: the title must name the platform
// and share at least one significant word with the contest name.
func genericMatch(c Contest, videos []VideoEntry) *VideoEntry {
	platform := strings.ToLower(string(c.Platform))
	words := significantTokens(strings.ToLower(c.Name))
	if len(words) == 0 {
		return nil
	}

	for i := range videos {
		title := strings.ToLower(videos[i].Title)
		if !strings.Contains(title, platform) {
			continue
		}
		for _, w := range words {
			if strings.Contains(title, w) {
				return &videos[i]
			}
		}
	}
	return nil
}

// nameTokens splits a lowercased name into tokens longer than three
// characters.
func nameTokens(name string) []string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 3 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// significantTokens is nameTokens with the stop-list applied on top.
func significantTokens(name string) []string {
	all := nameTokens(name)
	tokens := all[:0]
	for _, f := range all {
		if _, stop := stopWords[f]; !stop {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
