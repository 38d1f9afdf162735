// Package rss fetches and parses syndication feeds.
package rss

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

const DefaultTimeout = 10 * time.Second

// Item is the part of a feed entry the tip endpoint uses.
type Item struct {
	Title       string
	Description string
	Link        string
}

// IReader reads the current items of a feed.
type IReader interface {
	Items(ctx context.Context, url string) ([]Item, error)
}

type Config struct {
	Timeout    time.Duration
	HTTPClient *http.Client
	UserAgent  string
}

// Reader implements IReader with gofeed, which handles RSS and Atom.
type Reader struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

func New(cfg Config) *Reader {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	p := gofeed.NewParser()
	if cfg.HTTPClient != nil {
		p.Client = cfg.HTTPClient
	}
	if cfg.UserAgent != "" {
		p.UserAgent = cfg.UserAgent
	}
	return &Reader{parser: p, timeout: cfg.Timeout}
}

func (r *Reader) Items(ctx context.Context, url string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	feed, err := r.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]Item, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil {
			continue
		}
		items = append(items, Item{
			Title:       it.Title,
			Description: it.Description,
			Link:        it.Link,
		})
	}
	return items, nil
}
