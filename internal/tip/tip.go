package tip

import (
	"time"

	"nutricoach/pkg/rss"
)

// Pick returns the tip for day: items[day % len] title, else the first
// DescriptionLimit runes of its description.
func Pick(items []rss.Item, day time.Time) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	chosen := items[day.Day()%len(items)]
	if chosen.Title != "" {
		return chosen.Title, true
	}
	if chosen.Description != "" {
		r := []rune(chosen.Description)
		if len(r) > DescriptionLimit {
			r = r[:DescriptionLimit]
		}
		return string(r), true
	}
	return "", false
}

// CuratedFor returns the curated tip for day.
func CuratedFor(day time.Time) string {
	return Curated[day.Day()%len(Curated)]
}
