package tip

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// DailyTip picks today's feed item. ok is false when the feed is
	// unreachable or empty.
	DailyTip(ctx context.Context) (tip string, ok bool)
	// StartupTip is DailyTip with the curated rotation as fallback.
	StartupTip(ctx context.Context) string
}
