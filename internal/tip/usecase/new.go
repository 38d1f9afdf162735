package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"nutricoach/internal/tip"
	"nutricoach/pkg/log"
	"nutricoach/pkg/rss"
)

// Config controls where tips come from and how long a day's pick is reused.
type Config struct {
	RSSURL   string
	CacheTTL time.Duration
}

type implUseCase struct {
	l      log.Logger
	reader rss.IReader
	cfg    Config
	now    func() time.Time

	group singleflight.Group
	cache *expirable.LRU[string, string]
}

// New creates a tip UseCase. A non-positive CacheTTL defaults to 30 minutes.
func New(l log.Logger, reader rss.IReader, cfg Config) tip.UseCase {
	return newUseCase(l, reader, cfg, time.Now)
}

func newUseCase(l log.Logger, reader rss.IReader, cfg Config, now func() time.Time) *implUseCase {
	if cfg.RSSURL == "" {
		cfg.RSSURL = tip.DefaultRSSURL
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	return &implUseCase{
		l:      l,
		reader: reader,
		cfg:    cfg,
		now:    now,
		cache:  expirable.NewLRU[string, string](cacheSize, nil, cfg.CacheTTL),
	}
}
