package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"nutricoach/internal/tip"
	"nutricoach/pkg/rss"
)

func newTipCmd(root *rootOptions) *cobra.Command {
	var (
		url      string
		fallback bool
	)

	cmd := &cobra.Command{
		Use:   "tip",
		Short: "Print today's tip from the food feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), root.timeout)
			defer cancel()

			now := time.Now()
			text, err := fetchTip(ctx, rss.New(rss.Config{Timeout: root.timeout}), url, now)
			if err != nil {
				if !fallback {
					return err
				}
				root.logger.Debugf(ctx, "feed unavailable, using curated tip: %v", err)
				text = tip.CuratedFor(now)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "rss-url", tip.DefaultRSSURL, "Feed URL")
	cmd.Flags().BoolVar(&fallback, "curated", true, "Use a curated tip when the feed yields nothing")
	return cmd
}

var errNoTip = errors.New("feed has no usable item")

func fetchTip(ctx context.Context, reader rss.IReader, url string, day time.Time) (string, error) {
	items, err := reader.Items(ctx, url)
	if err != nil {
		return "", fmt.Errorf("tip: %w", err)
	}
	text, ok := tip.Pick(items, day)
	if !ok {
		return "", errNoTip
	}
	return text, nil
}
