package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/contesthub/contesthub/internal/index"
	"github.com/contesthub/contesthub/internal/logger"
)

type Deps struct {
	Logger         logger.Logger
	StartTime      time.Time
	Version        string
	Commit         string
	BuildDate      string
	GoVersion      string
	TimeNow        func() time.Time   // for testing, defaults to time.Now
	RedisClient    *redis.Client      // Redis client connection, nil when redis is down
	MemoryIndex    *index.MemoryIndex // In-memory contest snapshot
	RefreshTrigger chan struct{}      // Channel to trigger a manual refresh cycle
}

// Now returns the injected clock, falling back to time.Now.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
