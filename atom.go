package inkfold

import (
	"os"
	"path/filepath"

	atom "github.com/thomas11/atomgenerator"
)

// RenderAtom writes an Atom feed alongside the RSS one when the "atom"
// output format is enabled.
func (s *Site) RenderAtom() error {
	filePath := filepath.Join(s.conf.OutDir, "atom.xml")
	return s.renderAndSaveAtom(s.conf.Title, "/", filePath, s.posts)
}

func (s *Site) renderAtomFeed(title, relURL string, ps posts) ([]byte, error) {
	feed := atom.Feed{
		Title:   title,
		Link:    s.conf.AbsURL(relURL),
		PubDate: s.now,
	}
	feed.AddAuthor(atom.Author{
		Name: s.conf.Params.Author,
		Uri:  s.conf.BaseURL,
	})

	for _, p := range ps {
		feed.AddEntry(s.entryForPost(p))
	}

	errs := feed.Validate()
	if len(errs) > 0 {
		return nil, errs[0]
	}

	return feed.GenXml()
}

func (s *Site) entryForPost(p *Post) *atom.Entry {
	e := &atom.Entry{
		Title:       p.Title,
		Description: summaryOrExcerpt(p),
		Link:        s.conf.AbsURL(p.Permalink),
		PubDate:     p.Date,
	}

	for _, t := range p.Tags {
		e.AddCategory(atom.Category{Term: t.String()})
	}

	if renderedBody, ok := s.renderCache[p.Permalink]; ok {
		e.Content = renderedBody
	}

	return e
}

func (s *Site) renderAndSaveAtom(title, relURL, filePath string, ps posts) error {
	atomXml, err := s.renderAtomFeed(title, relURL, ps)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, atomXml, 0o664)
}
