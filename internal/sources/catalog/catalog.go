// Package catalog resolves where upstream data comes from: the contest-list
// endpoint per platform and the solution-playlist id per platform. Everything
// has a built-in default so the service runs without any file on disk; an
// optional sources.yaml overrides individual entries.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/contesthub/contesthub/internal/domain"
)

type Endpoint struct {
	URL string `yaml:"url"`
}

type YouTube struct {
	URL       string            `yaml:"url"`
	Playlists map[string]string `yaml:"playlists"` // platform name (lowercase) -> playlist id
}

type Catalog struct {
	Codeforces Endpoint `yaml:"codeforces"`
	LeetCode   Endpoint `yaml:"leetcode"`
	CodeChef   Endpoint `yaml:"codechef"`
	YouTube    YouTube  `yaml:"youtube"`
}

// Default returns the catalog pointing at the public upstream APIs.
// Playlist ids have no sensible default and stay empty until configured.
func Default() Catalog {
	return Catalog{
		Codeforces: Endpoint{URL: "https://codeforces.com/api/contest.list"},
		LeetCode:   Endpoint{URL: "https://leetcode.com/graphql"},
		CodeChef:   Endpoint{URL: "https://www.codechef.com/api/list/contests/all"},
		YouTube: YouTube{
			URL:       "https://www.googleapis.com/youtube/v3/playlistItems",
			Playlists: map[string]string{},
		},
	}
}

// Load reads a sources.yaml and overlays it on the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Catalog, error) {
	cat := Default()
	if path == "" {
		return cat, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cat, fmt.Errorf("failed to read sources file: %w", err)
	}

	var overlay Catalog
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return cat, fmt.Errorf("failed to parse sources yaml: %w", err)
	}

	if overlay.Codeforces.URL != "" {
		cat.Codeforces.URL = overlay.Codeforces.URL
	}
	if overlay.LeetCode.URL != "" {
		cat.LeetCode.URL = overlay.LeetCode.URL
	}
	if overlay.CodeChef.URL != "" {
		cat.CodeChef.URL = overlay.CodeChef.URL
	}
	if overlay.YouTube.URL != "" {
		cat.YouTube.URL = overlay.YouTube.URL
	}
	for name, id := range overlay.YouTube.Playlists {
		cat.YouTube.Playlists[strings.ToLower(name)] = id
	}

	return cat, nil
}

// PlaylistFor returns the configured playlist id for a platform, or "".
func (c Catalog) PlaylistFor(p domain.Platform) string {
	return c.YouTube.Playlists[strings.ToLower(string(p))]
}
