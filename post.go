package inkfold

import (
	"bytes"
	"fmt"
	"time"
)

// Cover is an optional cover image reference.
type Cover struct {
	Image string `yaml:"image"`
	Alt   string `yaml:"alt"`
}

// Post is one content document after front-matter extraction. The permalink
// is derived from the content path and the optional slug override.
type Post struct {
	Title, Slug, Summary string
	Author               string
	Date                 time.Time
	ExpiryDate           time.Time
	Draft                bool
	Tags                 []tag
	Cover                Cover
	Path                 string
	Permalink            string
	Body                 []byte
}

// Called from templates
func (p *Post) FormatDate() string {
	return formatDate(p.Date)
}

// Called from templates
func (p *Post) FormatDateShort() string {
	return formatDateShort(p.Date)
}

func (p *Post) future(now time.Time) bool {
	return p.Date.After(now)
}

func (p *Post) expired(now time.Time) bool {
	return !p.ExpiryDate.IsZero() && !p.ExpiryDate.After(now)
}

func (p *Post) String() string {
	b := new(bytes.Buffer)
	b.WriteString("title: ")
	b.WriteString(p.Title)
	b.WriteString("\ndate: ")
	b.WriteString(p.Date.String())
	b.WriteString("\npermalink: ")
	b.WriteString(p.Permalink)
	b.WriteString("\ntags: ")
	fmt.Fprintln(b, p.Tags)

	body := p.Body
	if len(body) > 200 {
		body = append(body[:200], '.', '.', '.')
	}
	b.WriteString("\nbody: ")
	b.Write(body)

	return b.String()
}

type posts []*Post

func (ps posts) earliestDate() time.Time {
	var t time.Time
	for _, p := range ps {
		if t.IsZero() || p.Date.Before(t) {
			t = p.Date
		}
	}
	return t
}

func (ps posts) latestDate() time.Time {
	var t time.Time
	for _, p := range ps {
		if p.Date.After(t) {
			t = p.Date
		}
	}
	return t
}
