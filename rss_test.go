package inkfold

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRSSOneItemPerPublishedPost(t *testing.T) {
	conf := newTestConf(t)
	writePost(t, conf, "first", "title: First\ndate: 2025-05-01T08:30:00Z\nsummary: The first one.", "x")
	writePost(t, conf, "second", "title: Second\ndate: 2025-05-02T08:30:00Z", "Second body paragraph.")
	writePost(t, conf, "draft", "title: Never\ndate: 2025-05-03T08:30:00Z\ndraft: true", "x")

	site := readSiteOrFail(t, conf)
	if err := site.RenderRSS(); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(filepath.Join(conf.OutDir, "index.xml"))
	if err != nil {
		t.Fatal(err)
	}

	var feed rssXML
	if err := xml.Unmarshal(raw, &feed); err != nil {
		t.Fatal(err)
	}

	if feed.Version != "2.0" {
		t.Errorf("rss version = %q", feed.Version)
	}
	if feed.Channel.Title != conf.Title {
		t.Errorf("channel title = %q", feed.Channel.Title)
	}
	if len(feed.Channel.Items) != 2 {
		t.Fatalf("got %d items, want 2 (drafts excluded)", len(feed.Channel.Items))
	}

	// Newest first, matching the listing order.
	first := feed.Channel.Items[0]
	if first.Title != "Second" {
		t.Errorf("first item = %q, want newest post", first.Title)
	}
	if first.Link != "https://example.com/posts/second/" || first.GUID != first.Link {
		t.Errorf("item link = %q guid = %q", first.Link, first.GUID)
	}
	wantDate := time.Date(2025, 5, 2, 8, 30, 0, 0, time.UTC).Format(time.RFC1123Z)
	if first.PubDate != wantDate {
		t.Errorf("pubDate = %q, want %q", first.PubDate, wantDate)
	}
	if first.Description != "Second body paragraph." {
		t.Errorf("description should fall back to the excerpt, got %q", first.Description)
	}

	if feed.Channel.Items[1].Description != "The first one." {
		t.Errorf("explicit summary not used: %q", feed.Channel.Items[1].Description)
	}
}

func TestRSSPerTagFeeds(t *testing.T) {
	conf := newTestConf(t)
	writePost(t, conf, "a", "title: A\ndate: 2025-05-01T00:00:00Z\ntags: [go]", "x")
	writePost(t, conf, "b", "title: B\ndate: 2025-05-02T00:00:00Z\ntags: [travel]", "x")

	site := readSiteOrFail(t, conf)
	if err := site.RenderRSS(); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(filepath.Join(conf.OutDir, "tags", "go", "index.xml"))
	if err != nil {
		t.Fatal(err)
	}
	var feed rssXML
	if err := xml.Unmarshal(raw, &feed); err != nil {
		t.Fatal(err)
	}
	if len(feed.Channel.Items) != 1 || feed.Channel.Items[0].Title != "A" {
		t.Errorf("tag feed items = %v", feed.Channel.Items)
	}
}
