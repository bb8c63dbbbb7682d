package inkfold

import (
	"testing"
	"time"
)

func makePosts(n int) posts {
	ps := make(posts, 0, n)
	for i := 0; i < n; i++ {
		ps = append(ps, &Post{
			Title: string(rune('A' + i)),
			Date:  time.Date(2025, 1, n-i, 0, 0, 0, 0, time.UTC),
		})
	}
	return ps
}

func TestPaginateSplitsEvenly(t *testing.T) {
	pagers := paginate(makePosts(6), 2)
	if len(pagers) != 3 {
		t.Fatalf("got %d pages, want 3", len(pagers))
	}
	for i, pg := range pagers {
		if pg.PageNumber != i+1 || pg.TotalPages != 3 {
			t.Errorf("page %d: number=%d total=%d", i, pg.PageNumber, pg.TotalPages)
		}
		if len(pg.Posts) != 2 {
			t.Errorf("page %d has %d posts", i, len(pg.Posts))
		}
	}
}

func TestPaginateRemainderOnLastPage(t *testing.T) {
	pagers := paginate(makePosts(5), 2)
	if len(pagers) != 3 {
		t.Fatalf("got %d pages, want 3", len(pagers))
	}
	if len(pagers[2].Posts) != 1 {
		t.Errorf("last page has %d posts, want 1", len(pagers[2].Posts))
	}
}

func TestPaginateEmptyInputYieldsHomePage(t *testing.T) {
	pagers := paginate(nil, 10)
	if len(pagers) != 1 || len(pagers[0].Posts) != 0 {
		t.Fatalf("empty site should still have a home page, got %v", pagers)
	}
	if pagers[0].HasNext() || pagers[0].HasPrev() {
		t.Error("single page must not link anywhere")
	}
}

func TestPaginateZeroSizeDoesNotPanic(t *testing.T) {
	pagers := paginate(nil, 0)
	if len(pagers) != 1 || len(pagers[0].Posts) != 0 {
		t.Fatalf("zero size with no posts should yield one empty page, got %v", pagers)
	}

	pagers = paginate(makePosts(3), 0)
	if len(pagers) != 3 {
		t.Fatalf("zero size should clamp to one post per page, got %d pages", len(pagers))
	}
}

func TestPagerURLs(t *testing.T) {
	pagers := paginate(makePosts(5), 2)

	if got := pagers[0].URL(); got != "/" {
		t.Errorf("page 1 URL = %q", got)
	}
	if got := pagers[1].URL(); got != "/page/2/" {
		t.Errorf("page 2 URL = %q", got)
	}
	if got := pagers[1].PrevURL(); got != "/" {
		t.Errorf("page 2 prev = %q", got)
	}
	if got := pagers[2].PrevURL(); got != "/page/2/" {
		t.Errorf("page 3 prev = %q", got)
	}
	if got := pagers[1].NextURL(); got != "/page/3/" {
		t.Errorf("page 2 next = %q", got)
	}
	if pagers[2].HasNext() {
		t.Error("last page must not have a next link")
	}
}
