package inkfold

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"
)

func formatDate(d time.Time) string {
	return d.Format("January 2, 2006")
}

func formatDateShort(d time.Time) string {
	return d.Format("Jan 2, 2006")
}

type templateParam struct {
	Site      *SiteConf
	Menu      []MenuEntry
	PageTitle string
	// A short id such as a tag name or "index", used by themes to mark the
	// active navigation entry.
	FileId string
}

func (t templateParam) IdIs(id string) bool {
	return t.FileId == id
}

type postTemplateParam struct {
	templateParam
	*Post
	RenderedBody template.HTML
}

type postListTemplateParam struct {
	templateParam
	PageHeading string
	Posts       []*Post
	Pager       *pager
}

type tagsTemplateParam struct {
	templateParam
	PostsByTag postsByTag
}

type templateEngine struct {
	toHtml        renderer
	themeDir      string
	templateCache map[string]*template.Template
}

// newTemplateEngine loads layouts from the configured theme. The theme
// directory must contain global.html plus one file per page kind.
func newTemplateEngine(r renderer, themeDir string) (*templateEngine, error) {
	if info, err := os.Stat(themeDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, themeDir)
	}
	return &templateEngine{
		toHtml:        r,
		themeDir:      themeDir,
		templateCache: make(map[string]*template.Template),
	}, nil
}

func (te *templateEngine) renderPost(tp templateParam, p *Post, w io.Writer) (string, error) {
	renderedBody, err := te.toHtml.render(p.Body)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", p.Path, err)
	}

	param := postTemplateParam{
		templateParam: tp,
		Post:          p,
		RenderedBody:  template.HTML(renderedBody),
	}

	t, err := te.getTemplate("post.html")
	if err != nil {
		return "", err
	}
	return renderedBody, t.Execute(w, param)
}

func (te *templateEngine) renderPostList(tp templateParam, ps []*Post, pageHeading string, pg *pager, w io.Writer) error {
	param := postListTemplateParam{
		templateParam: tp,
		PageHeading:   pageHeading,
		Posts:         ps,
		Pager:         pg,
	}
	t, err := te.getTemplate("list.html")
	if err != nil {
		return err
	}
	return t.Execute(w, param)
}

func (te *templateEngine) renderTags(tp templateParam, byTag postsByTag, w io.Writer) error {
	param := tagsTemplateParam{
		templateParam: tp,
		PostsByTag:    byTag,
	}
	t, err := te.getTemplate("tags.html")
	if err != nil {
		return err
	}
	return t.Execute(w, param)
}

func (te *templateEngine) getTemplate(filename string) (*template.Template, error) {
	if t, ok := te.templateCache[filename]; ok {
		return t, nil
	}

	t, err := template.ParseFiles(
		filepath.Join(te.themeDir, "global.html"),
		filepath.Join(te.themeDir, filename),
	)
	if err != nil {
		return nil, fmt.Errorf("loading theme layout %s: %w", filename, err)
	}
	te.templateCache[filename] = t
	return t, nil
}
