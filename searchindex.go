package inkfold

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// searchDoc is the projection of a post the client-side fuzzy matcher
// consumes. The index is rebuilt from scratch on every build.
type searchDoc struct {
	Title     string `json:"title"`
	Permalink string `json:"permalink"`
	Summary   string `json:"summary"`
	Content   string `json:"content"`
}

// RenderSearchIndex writes index.json with one document per published post,
// in listing order.
func (s *Site) RenderSearchIndex() error {
	docs := make([]searchDoc, 0, len(s.posts))
	for _, p := range s.posts {
		docs = append(docs, searchDoc{
			Title:     p.Title,
			Permalink: p.Permalink,
			Summary:   summaryOrExcerpt(p),
			Content:   string(p.Body),
		})
	}

	out, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')

	if err := os.MkdirAll(s.conf.OutDir, 0o775); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.conf.OutDir, "index.json"), out, 0o664)
}
