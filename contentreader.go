package inkfold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/goliatone/go-slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrDateMissing = errors.New("front matter has no date")

// frontMatter is the structured head of a content document. Unknown keys are
// accepted and ignored.
type frontMatter struct {
	Title      string    `yaml:"title"`
	Date       time.Time `yaml:"date"`
	Draft      bool      `yaml:"draft"`
	ExpiryDate time.Time `yaml:"expiryDate"`
	Tags       []string  `yaml:"tags"`
	Summary    string    `yaml:"summary"`
	Slug       string    `yaml:"slug"`
	Cover      Cover     `yaml:"cover"`
	Params     struct {
		Author string `yaml:"author"`
	} `yaml:"params"`
}

// findContentFiles walks dir and returns all Markdown files in lexical walk
// order. That order is the declaration order used for sort tie-breaks.
func findContentFiles(dir string) ([]string, error) {
	files := make([]string, 0, 100)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func readPostFromFile(conf *SiteConf, path string) (*Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return nil, fmt.Errorf("parsing front matter of %s: %w", path, err)
	}

	if fm.Date.IsZero() {
		return nil, fmt.Errorf("%s: %w", path, ErrDateMissing)
	}

	baseName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	title := fm.Title
	if title == "" {
		title = titleFromFileName(baseName, conf.LanguageCode)
	}

	postSlug := fm.Slug
	if postSlug == "" {
		postSlug, err = slug.Normalize(baseName)
		if err != nil {
			return nil, fmt.Errorf("deriving slug for %s: %w", path, err)
		}
	}

	permalink, err := permalinkFor(conf.ContentDir, path, postSlug)
	if err != nil {
		return nil, err
	}

	author := fm.Params.Author
	if author == "" {
		author = conf.Params.Author
	}

	tags := make([]tag, 0, len(fm.Tags))
	for _, t := range fm.Tags {
		tags = append(tags, tag(t))
	}

	return &Post{
		Title:      title,
		Slug:       postSlug,
		Summary:    fm.Summary,
		Author:     author,
		Date:       fm.Date,
		ExpiryDate: fm.ExpiryDate,
		Draft:      fm.Draft,
		Tags:       tags,
		Cover:      fm.Cover,
		Path:       path,
		Permalink:  permalink,
		Body:       body,
	}, nil
}

// permalinkFor maps content/<section>/<file>.md to /<section>/<slug>/.
func permalinkFor(contentDir, path, postSlug string) (string, error) {
	rel, err := filepath.Rel(contentDir, path)
	if err != nil {
		return "", fmt.Errorf("content path %s outside %s: %w", path, contentDir, err)
	}

	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." {
		dir = ""
	} else {
		dir += "/"
	}
	return "/" + dir + postSlug + "/", nil
}

func titleFromFileName(baseName, languageCode string) string {
	words := strings.ReplaceAll(strings.ReplaceAll(baseName, "-", " "), "_", " ")
	caser := cases.Title(language.Make(languageCode))
	return caser.String(words)
}

// summaryOrExcerpt returns the explicit summary, or the first paragraph of
// the body as a fallback.
func summaryOrExcerpt(p *Post) string {
	if p.Summary != "" {
		return p.Summary
	}

	body := bytes.TrimSpace(p.Body)
	if end := bytes.Index(body, []byte("\n\n")); end != -1 {
		body = body[:end]
	}
	return strings.TrimSpace(string(body))
}
