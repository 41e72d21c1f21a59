// Package aggregator fans out to every upstream source concurrently and
// merges the results into one enriched snapshot.
package aggregator

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/contesthub/contesthub/internal/domain"
	"github.com/contesthub/contesthub/internal/logger"
)

// ContestSource is one platform contest adapter. Adapters are failure-soft:
// they return an empty slice instead of an error.
type ContestSource interface {
	FetchContests(ctx context.Context) []domain.Contest
}

// PlaylistSource lists the solution videos of one playlist.
type PlaylistSource interface {
	FetchPlaylist(ctx context.Context, playlistID string) []domain.VideoEntry
}

// Snapshot is the merged result of one refresh cycle. Contests are enriched
// with auto-matched video links and concatenated in platform order
// (Codeforces, LeetCode, CodeChef); the snapshot is not sorted.
type Snapshot struct {
	Contests  []domain.Contest
	Videos    map[domain.Platform][]domain.VideoEntry
	FetchedAt time.Time
}

type Aggregator struct {
	codeforces  ContestSource
	leetcode    ContestSource
	codechef    ContestSource
	playlists   PlaylistSource
	playlistIDs map[domain.Platform]string
	logger      logger.Logger
	now         func() time.Time
}

func New(
	codeforces, leetcode, codechef ContestSource,
	playlists PlaylistSource,
	playlistIDs map[domain.Platform]string,
	log logger.Logger,
) *Aggregator {
	return &Aggregator{
		codeforces:  codeforces,
		leetcode:    leetcode,
		codechef:    codechef,
		playlists:   playlists,
		playlistIDs: playlistIDs,
		logger:      log,
		now:         time.Now,
	}
}

// Fetch runs the six upstream calls concurrently, waits for all of them and
// merges the results. A failed source contributes an empty slice, so the
// join itself never fails.
func (a *Aggregator) Fetch(ctx context.Context) *Snapshot {
	var (
		cfContests, lcContests, ccContests []domain.Contest
		cfVideos, lcVideos, ccVideos       []domain.VideoEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { cfContests = a.codeforces.FetchContests(gctx); return nil })
	g.Go(func() error { lcContests = a.leetcode.FetchContests(gctx); return nil })
	g.Go(func() error { ccContests = a.codechef.FetchContests(gctx); return nil })
	g.Go(func() error {
		cfVideos = a.playlists.FetchPlaylist(gctx, a.playlistIDs[domain.PlatformCodeforces])
		return nil
	})
	g.Go(func() error {
		lcVideos = a.playlists.FetchPlaylist(gctx, a.playlistIDs[domain.PlatformLeetCode])
		return nil
	})
	g.Go(func() error {
		ccVideos = a.playlists.FetchPlaylist(gctx, a.playlistIDs[domain.PlatformCodeChef])
		return nil
	})
	_ = g.Wait()

	now := a.now()
	videos := map[domain.Platform][]domain.VideoEntry{
		domain.PlatformCodeforces: cfVideos,
		domain.PlatformLeetCode:   lcVideos,
		domain.PlatformCodeChef:   ccVideos,
	}

	contests := make([]domain.Contest, 0, len(cfContests)+len(lcContests)+len(ccContests))
	contests = append(contests, enrich(now, cfContests, cfVideos)...)
	contests = append(contests, enrich(now, lcContests, lcVideos)...)
	contests = append(contests, enrich(now, ccContests, ccVideos)...)

	a.logger.Info("refresh cycle fetched",
		logger.Int("contests", len(contests)),
		logger.Int("videos", len(cfVideos)+len(lcVideos)+len(ccVideos)))

	return &Snapshot{
		Contests:  contests,
		Videos:    videos,
		FetchedAt: now,
	}
}

// enrich attaches the best-matching solution video to each started contest.
func enrich(now time.Time, contests []domain.Contest, videos []domain.VideoEntry) []domain.Contest {
	if len(videos) == 0 {
		return contests
	}
	for i := range contests {
		if match := domain.MatchVideo(now, contests[i], videos); match != nil {
			contests[i].VideoLink = match.VideoURL
		}
	}
	return contests
}
