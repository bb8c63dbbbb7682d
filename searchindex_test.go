package inkfold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSearchIndexProjection(t *testing.T) {
	conf := newTestConf(t)
	writePost(t, conf, "findme", "title: Find Me\ndate: 2025-05-01T00:00:00Z\nsummary: Short.", "Full searchable body text.")
	writePost(t, conf, "draft", "title: Hidden\ndate: 2025-05-02T00:00:00Z\ndraft: true", "x")

	site := readSiteOrFail(t, conf)
	if err := site.RenderSearchIndex(); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(filepath.Join(conf.OutDir, "index.json"))
	if err != nil {
		t.Fatal(err)
	}

	var docs []searchDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		t.Fatal(err)
	}

	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1 (drafts excluded)", len(docs))
	}
	doc := docs[0]
	if doc.Title != "Find Me" || doc.Permalink != "/posts/findme/" || doc.Summary != "Short." {
		t.Errorf("projection = %+v", doc)
	}
	if !strings.Contains(doc.Content, "Full searchable body text.") {
		t.Errorf("content missing body: %q", doc.Content)
	}
}

func TestSearchIndexRebuiltFromScratch(t *testing.T) {
	conf := newTestConf(t)
	writePost(t, conf, "one", "title: One\ndate: 2025-05-01T00:00:00Z", "x")

	site := readSiteOrFail(t, conf)
	if err := site.RenderSearchIndex(); err != nil {
		t.Fatal(err)
	}

	// Remove the post and rebuild; the old entry must be gone.
	if err := os.Remove(filepath.Join(conf.ContentDir, "posts", "one.md")); err != nil {
		t.Fatal(err)
	}
	site = readSiteOrFail(t, conf)
	if err := site.RenderSearchIndex(); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(filepath.Join(conf.OutDir, "index.json"))
	if err != nil {
		t.Fatal(err)
	}
	var docs []searchDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		t.Fatal(err)
	}
	if len(docs) != 0 {
		t.Fatalf("index not rebuilt, still has %d documents", len(docs))
	}
}
