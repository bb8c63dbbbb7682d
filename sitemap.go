package inkfold

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"time"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// RenderSitemap writes sitemap.xml covering the home page, every post, and
// every tag listing.
func (s *Site) RenderSitemap() error {
	urls := []sitemapURL{
		{Loc: s.conf.AbsURL("/"), LastMod: s.posts.latestDate().Format(time.DateOnly)},
	}
	for _, p := range s.posts {
		urls = append(urls, sitemapURL{
			Loc:     s.conf.AbsURL(p.Permalink),
			LastMod: p.Date.Format(time.DateOnly),
		})
	}
	for _, tagPosts := range groupByTag(s.posts) {
		urls = append(urls, sitemapURL{
			Loc:     s.conf.AbsURL("/tags/" + tagPosts.Tag.Id() + "/"),
			LastMod: tagPosts.Posts.latestDate().Format(time.DateOnly),
		})
	}

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	var b bytes.Buffer
	b.WriteString(xml.Header)
	enc := xml.NewEncoder(&b)
	enc.Indent("", "  ")
	if err := enc.Encode(sitemap); err != nil {
		return err
	}
	b.WriteString("\n")

	return os.WriteFile(filepath.Join(s.conf.OutDir, "sitemap.xml"), b.Bytes(), 0o664)
}

// RenderRobotsTXT writes a permissive robots.txt pointing at the sitemap.
func (s *Site) RenderRobotsTXT() error {
	var b bytes.Buffer
	b.WriteString("User-agent: *\n")
	b.WriteString("Sitemap: " + s.conf.AbsURL("/sitemap.xml") + "\n")
	return os.WriteFile(filepath.Join(s.conf.OutDir, "robots.txt"), b.Bytes(), 0o664)
}
