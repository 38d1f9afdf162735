package rss

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Food</title>
<item><title>Eat more beans</title><description>Beans are cheap protein.</description><link>https://example.com/beans</link></item>
<item><title></title><description>Untitled entry body</description></item>
</channel>
</rss>`

func TestItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	items, err := New(Config{}).Items(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d", len(items))
	}
	if items[0].Title != "Eat more beans" || items[0].Link != "https://example.com/beans" {
		t.Errorf("unexpected first item %+v", items[0])
	}
	if items[1].Title != "" || items[1].Description != "Untitled entry body" {
		t.Errorf("unexpected second item %+v", items[1])
	}
}

func TestItemsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := New(Config{}).Items(context.Background(), srv.URL); err == nil {
		t.Error("expected error for 502 feed")
	}
}
