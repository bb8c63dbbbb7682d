package inkfold

import (
	"strings"
	"testing"
)

func TestMarkdownRendersGFMTable(t *testing.T) {
	r := newMarkdownRenderer(MarkupConf{})
	out, err := r.render([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<table>") {
		t.Errorf("GFM table not rendered: %q", out)
	}
}

func TestMarkdownAutoHeadingID(t *testing.T) {
	conf := MarkupConf{}
	conf.Goldmark.Parser.AutoHeadingID = true

	r := newMarkdownRenderer(conf)
	out, err := r.render([]byte("## Hello World\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `id="hello-world"`) {
		t.Errorf("heading id missing: %q", out)
	}

	r = newMarkdownRenderer(MarkupConf{})
	out, err = r.render([]byte("## Hello World\n"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "id=") {
		t.Errorf("heading id should be off by default: %q", out)
	}
}

func TestMarkdownAttributeBlocks(t *testing.T) {
	conf := MarkupConf{}
	conf.Goldmark.Parser.Attribute = true

	r := newMarkdownRenderer(conf)
	out, err := r.render([]byte("## Title {#custom-id}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `id="custom-id"`) {
		t.Errorf("attribute block not applied: %q", out)
	}
}

func TestMarkdownKeepsRawHTML(t *testing.T) {
	r := newMarkdownRenderer(MarkupConf{})
	out, err := r.render([]byte("before\n\n<figure>x</figure>\n\nafter\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<figure>") {
		t.Errorf("raw HTML should pass through: %q", out)
	}
}
