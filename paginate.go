package inkfold

import "fmt"

// pager is one page of a paginated post list.
type pager struct {
	PageNumber int
	TotalPages int
	Posts      []*Post
}

func (p *pager) HasPrev() bool { return p.PageNumber > 1 }
func (p *pager) HasNext() bool { return p.PageNumber < p.TotalPages }

func (p *pager) PrevURL() string {
	if p.PageNumber <= 2 {
		return "/"
	}
	return fmt.Sprintf("/page/%d/", p.PageNumber-1)
}

func (p *pager) NextURL() string {
	return fmt.Sprintf("/page/%d/", p.PageNumber+1)
}

// URL is the root-relative address of this page. Page one is the home page.
func (p *pager) URL() string {
	if p.PageNumber == 1 {
		return "/"
	}
	return fmt.Sprintf("/page/%d/", p.PageNumber)
}

// paginate splits ps into pages of the given size, preserving order. An
// empty input still yields a single empty page so the home page exists.
func paginate(ps posts, size int) []*pager {
	if size < 1 {
		size = 1
	}

	total := (len(ps) + size - 1) / size
	if total == 0 {
		total = 1
	}

	pagers := make([]*pager, 0, total)
	for i := 0; i < total; i++ {
		lo := i * size
		hi := min(lo+size, len(ps))
		pagers = append(pagers, &pager{
			PageNumber: i + 1,
			TotalPages: total,
			Posts:      ps[lo:hi],
		})
	}
	return pagers
}
