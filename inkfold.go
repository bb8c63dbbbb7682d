// Package inkfold is a static blog generator: Markdown content with
// front-matter in, a fixed tree of HTML, feeds, and a search index out.
// Rendering is a one-shot batch run; given identical inputs and the same
// build time, two runs produce byte-identical output.
//
// Themes provide the html/template layouts. See the example directory for a
// working site.
package inkfold

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/otiai10/copy"
)

// Home page output formats.
const (
	OutputHTML = "html"
	OutputRSS  = "rss"
	OutputAtom = "atom"
	OutputJSON = "json"
)

// Site holds everything one build needs: the immutable configuration, the
// published posts in listing order, and the build time.
type Site struct {
	posts       posts
	conf        *SiteConf
	now         time.Time
	renderCache map[string]string
}

// Posts returns the published posts in listing order.
func (s *Site) Posts() []*Post { return s.posts }

// ReadSite loads all content documents and applies the publication filter:
// drafts, future-dated posts, and expired posts are dropped unless the
// corresponding build toggle forces their inclusion. The result is ordered
// by publish date descending; posts with equal dates keep the lexical order
// of their source files.
func ReadSite(conf *SiteConf, now time.Time) (*Site, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	files, err := findContentFiles(conf.ContentDir)
	if err != nil {
		return nil, err
	}

	s := Site{
		posts:       make(posts, 0, 100),
		conf:        conf,
		now:         now,
		renderCache: make(map[string]string),
	}

	for _, f := range files {
		p, err := readPostFromFile(conf, f)
		if err != nil {
			return nil, err
		}

		if p.Draft && !conf.BuildDrafts {
			continue
		}
		if p.future(now) && !conf.BuildFuture {
			continue
		}
		if p.expired(now) && !conf.BuildExpired {
			continue
		}
		s.posts = append(s.posts, p)
	}

	// Order posts by date, newest first. The stable sort keeps declaration
	// order for equal dates.
	sort.SliceStable(s.posts, func(i, j int) bool { return s.posts[i].Date.After(s.posts[j].Date) })

	return &s, nil
}

// RenderHTML writes the post pages, the tag pages, the tags overview, and
// the paginated home listing.
func (s *Site) RenderHTML() error {
	engine, err := newTemplateEngine(newMarkdownRenderer(s.conf.Markup), s.conf.ThemeDir())
	if err != nil {
		return err
	}

	// One shared parameter holder, re-used for all pages with the title and
	// file id overwritten per page.
	globalTP := templateParam{
		Site: s.conf,
		Menu: s.conf.MainMenu(),
	}

	// Post pages.
	for _, p := range s.posts {
		globalTP.PageTitle = p.Title
		globalTP.FileId = p.Slug

		var b bytes.Buffer
		renderedBody, err := engine.renderPost(globalTP, p, &b)
		if err != nil {
			return err
		}
		if err := writePage(s.conf.OutDir, p.Permalink, b.Bytes()); err != nil {
			return err
		}

		s.renderCache[p.Permalink] = renderedBody
	}

	// Tag pages.
	byTag := groupByTag(s.posts)
	for _, t := range byTag {
		globalTP.PageTitle = t.Tag.String()
		globalTP.FileId = t.Tag.Id()

		var b bytes.Buffer
		if err := engine.renderPostList(globalTP, t.Posts, t.Tag.String(), nil, &b); err != nil {
			return err
		}
		if err := writePage(s.conf.OutDir, "/tags/"+t.Tag.Id()+"/", b.Bytes()); err != nil {
			return err
		}
	}

	// Tags overview page.
	globalTP.PageTitle = "Tags"
	globalTP.FileId = "tags"
	var b bytes.Buffer
	if err := engine.renderTags(globalTP, byTag, &b); err != nil {
		return err
	}
	if err := writePage(s.conf.OutDir, "/tags/", b.Bytes()); err != nil {
		return err
	}

	// Paginated home listing.
	for _, pg := range paginate(s.posts, s.conf.Pagination.PagerSize) {
		globalTP.PageTitle = s.conf.Title
		globalTP.FileId = "index"

		var b bytes.Buffer
		if err := engine.renderPostList(globalTP, pg.Posts, "", pg, &b); err != nil {
			return err
		}
		if err := writePage(s.conf.OutDir, pg.URL(), b.Bytes()); err != nil {
			return err
		}
	}

	return nil
}

// RenderAll runs the full build: HTML, the enabled home output formats,
// sitemap, robots.txt, and the static file passthrough.
func (s *Site) RenderAll() error {
	if err := os.MkdirAll(s.conf.OutDir, 0o775); err != nil {
		return fmt.Errorf("creating output directory %s: %w", s.conf.OutDir, err)
	}

	if s.conf.HasOutput(OutputHTML) {
		if err := s.RenderHTML(); err != nil {
			return err
		}
	}
	if s.conf.HasOutput(OutputRSS) {
		if err := s.RenderRSS(); err != nil {
			return err
		}
	}
	if s.conf.HasOutput(OutputAtom) {
		if err := s.RenderAtom(); err != nil {
			return err
		}
	}
	if s.conf.HasOutput(OutputJSON) {
		if err := s.RenderSearchIndex(); err != nil {
			return err
		}
	}

	if err := s.RenderSitemap(); err != nil {
		return err
	}
	if s.conf.EnableRobotsTXT {
		if err := s.RenderRobotsTXT(); err != nil {
			return err
		}
	}

	return s.CopyStaticFiles()
}

// CopyStaticFiles copies the static directory into the output root,
// untouched.
func (s *Site) CopyStaticFiles() error {
	if _, err := os.Stat(s.conf.StaticDir); os.IsNotExist(err) {
		return nil
	}
	log.Println("Recursively copying", s.conf.StaticDir, "to", s.conf.OutDir)
	return copy.Copy(s.conf.StaticDir, s.conf.OutDir)
}

// writePage writes page content at <outDir>/<permalink>/index.html.
func writePage(outDir, permalink string, content []byte) error {
	dir := filepath.Join(outDir, filepath.FromSlash(strings.Trim(permalink, "/")))
	if err := os.MkdirAll(dir, 0o775); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "index.html"), content, 0o664)
}
