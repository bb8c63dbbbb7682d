package inkfold

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"time"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// RenderRSS writes the site feed, plus one feed per tag next to the tag's
// listing page.
func (s *Site) RenderRSS() error {
	filePath := filepath.Join(s.conf.OutDir, "index.xml")
	if err := s.renderAndSaveRSS(s.conf.Title, "/", filePath, s.posts); err != nil {
		return err
	}

	for _, tagPosts := range groupByTag(s.posts) {
		t := tagPosts.Tag
		title := s.conf.Title + " - " + t.String()
		relURL := "/tags/" + t.Id() + "/"
		filePath := filepath.Join(s.conf.OutDir, "tags", t.Id(), "index.xml")

		if err := s.renderAndSaveRSS(title, relURL, filePath, tagPosts.Posts); err != nil {
			return err
		}
	}
	return nil
}

func (s *Site) renderRSSFeed(title, relURL string, ps posts) ([]byte, error) {
	items := make([]rssItem, 0, len(ps))
	for _, p := range ps {
		link := s.conf.AbsURL(p.Permalink)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: summaryOrExcerpt(p),
			PubDate:     p.Date.Format(time.RFC1123Z),
			GUID:        link,
		})
	}

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       title,
			Link:        s.conf.AbsURL(relURL),
			Description: s.conf.Params.Description,
			Language:    s.conf.LanguageCode,
			Items:       items,
		},
	}

	var b bytes.Buffer
	b.WriteString(xml.Header)
	enc := xml.NewEncoder(&b)
	enc.Indent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return nil, err
	}
	b.WriteString("\n")
	return b.Bytes(), nil
}

func (s *Site) renderAndSaveRSS(title, relURL, filePath string, ps posts) error {
	out, err := s.renderRSSFeed(title, relURL, ps)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0o775); err != nil {
		return err
	}
	return os.WriteFile(filePath, out, 0o664)
}
