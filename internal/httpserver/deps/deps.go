package deps

import (
	"time"

	"github.com/chris-regnier/moodmemo/internal/feed"
	"github.com/chris-regnier/moodmemo/internal/logger"
	"github.com/chris-regnier/moodmemo/internal/storage"
)

type Deps struct {
	Logger         logger.Logger
	Store          *storage.Store
	Feed           feed.Subscriber // nil when no change feed is configured
	StartTime      time.Time
	Version        string
	Commit         string
	TimeNow        func() time.Time // defaults to time.Now
	RequestTimeout time.Duration    // per-request timeout for /api routes
}

// Now returns the current time through TimeNow when set.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
