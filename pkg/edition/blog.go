package edition

import (
	"context"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/matzehuels/wikireader/pkg/errors"
)

// BlogOptions selects the feed and whether entries are limited to the
// edition month.
type BlogOptions struct {
	FeedURL     string
	MonthFilter bool
	Month       int // 0-11
	Year        int
}

// Blog fetches the feed and returns its dated entries in feed order. RSS
// and Atom are both accepted. Entries with neither a parseable publish nor
// update time are dropped.
func Blog(ctx context.Context, f TextFetcher, opts BlogOptions) ([]BlogPost, error) {
	text, err := f.GetText(ctx, opts.FeedURL)
	if err != nil {
		return []BlogPost{}, err
	}
	return ParseFeed(text, opts)
}

// ParseFeed extracts posts from a feed document.
func ParseFeed(text string, opts BlogOptions) ([]BlogPost, error) {
	feed, err := gofeed.NewParser().ParseString(text)
	if err != nil {
		return []BlogPost{}, errors.Wrap(errors.ErrCodeParseFailed, err, "parse feed")
	}

	policy := bluemonday.StrictPolicy()
	posts := []BlogPost{}
	for _, item := range feed.Items {
		published := itemTime(item)
		if published == nil {
			continue
		}
		if opts.MonthFilter && !inMonth(*published, opts.Month, opts.Year) {
			continue
		}
		posts = append(posts, BlogPost{
			Title: strings.TrimSpace(html.UnescapeString(policy.Sanitize(item.Title))),
			URL:   itemLink(item),
		})
	}
	return posts, nil
}

func itemTime(item *gofeed.Item) *time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed
	}
	return item.UpdatedParsed
}

// itemLink prefers the link gofeed selected (Atom alternate or RSS <link>)
// and falls back to the first listed link.
func itemLink(item *gofeed.Item) string {
	if item.Link != "" {
		return strings.TrimSpace(item.Link)
	}
	if len(item.Links) > 0 {
		return strings.TrimSpace(item.Links[0])
	}
	return ""
}

func inMonth(t time.Time, month, year int) bool {
	t = t.UTC()
	return t.Year() == year && int(t.Month())-1 == month
}
