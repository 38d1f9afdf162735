package usecase

import (
	"context"

	"nutricoach/internal/tip"
)

func (uc *implUseCase) DailyTip(ctx context.Context) (string, bool) {
	today := uc.now()
	key := today.Format(dayKeyLayout)
	if v, ok := uc.cache.Get(key); ok {
		return v, true
	}

	// Concurrent misses share one feed fetch. The fetch is detached from
	// the caller so one cancelled request does not fail the others.
	v, err, _ := uc.group.Do(key, func() (any, error) {
		items, err := uc.reader.Items(context.WithoutCancel(ctx), uc.cfg.RSSURL)
		if err != nil {
			return "", err
		}
		t, ok := tip.Pick(items, today)
		if ok {
			uc.cache.Add(key, t)
		}
		return t, nil
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: feed %s: %v", LogPrefixDailyTip, uc.cfg.RSSURL, err)
		return "", false
	}
	t := v.(string)
	return t, t != ""
}

func (uc *implUseCase) StartupTip(ctx context.Context) string {
	if t, ok := uc.DailyTip(ctx); ok {
		return t
	}
	return tip.CuratedFor(uc.now())
}
