package inkfold

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

type renderer interface {
	render(in []byte) (string, error)
}

// newMarkdownRenderer builds the goldmark converter from the markup section
// of the site configuration.
func newMarkdownRenderer(conf MarkupConf) renderer {
	parserOpts := []parser.Option{}
	if conf.Goldmark.Parser.AutoHeadingID {
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}
	if conf.Goldmark.Parser.Attribute {
		parserOpts = append(parserOpts, parser.WithAttribute())
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parserOpts...),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)

	return &goldmarkRenderer{md}
}

type goldmarkRenderer struct {
	md goldmark.Markdown
}

func (g *goldmarkRenderer) render(in []byte) (string, error) {
	var buf bytes.Buffer
	if err := g.md.Convert(in, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
