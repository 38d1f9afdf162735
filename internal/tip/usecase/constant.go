package usecase

import "time"

const (
	LogPrefixDailyTip = "internal.tip.usecase.DailyTip"

	defaultCacheTTL = 30 * time.Minute
	cacheSize       = 4
	dayKeyLayout    = "2006-01-02"
)
