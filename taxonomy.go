package inkfold

import (
	"bytes"
	"cmp"
	"slices"

	"github.com/goliatone/go-slug"
)

type tag string

func (t tag) String() string { return string(t) }

// Id is the URL segment for the tag's listing page.
func (t tag) Id() string {
	id, err := slug.Normalize(string(t))
	if err != nil || id == "" {
		return string(t)
	}
	return id
}

type tagWithPosts struct {
	Tag   tag
	Posts posts
}

func (t tagWithPosts) EarliestDateFormatted() string {
	return formatDateShort(t.Posts.earliestDate())
}

func (t tagWithPosts) LatestDateFormatted() string {
	return formatDateShort(t.Posts.latestDate())
}

// Posts grouped by tag. Sorted by number of posts per tag, then by newest
// post, then by tag name so equal groups have a stable order.
type postsByTag []tagWithPosts

func (pt *postsByTag) addPost(t tag, p *Post) {
	for i, tp := range *pt {
		if tp.Tag == t {
			tp.Posts = append(tp.Posts, p)
			(*pt)[i] = tp
			return
		}
	}

	group := tagWithPosts{t, make(posts, 1, 10)}
	group.Posts[0] = p
	*pt = append(*pt, group)
}

func (pt postsByTag) String() string {
	b := new(bytes.Buffer)
	for _, t := range pt {
		b.WriteString(t.Tag.String())
		b.WriteString(": ")
		for i, p := range t.Posts {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.Title)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func groupByTag(ps posts) postsByTag {
	byTag := make(postsByTag, 0, 20)

	for _, p := range ps {
		for _, t := range p.Tags {
			byTag.addPost(t, p)
		}
	}

	slices.SortFunc(byTag, func(a, b tagWithPosts) int {
		// More posts = comes first (descending order)
		if c := cmp.Compare(len(b.Posts), len(a.Posts)); c != 0 {
			return c
		}
		// If equal post count, newer comes first
		if c := b.Posts.latestDate().Compare(a.Posts.latestDate()); c != 0 {
			return c
		}
		return cmp.Compare(a.Tag, b.Tag)
	})

	return byTag
}
