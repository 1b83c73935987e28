package edition

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/matzehuels/wikireader/pkg/integrations/wikipedia"
	"github.com/matzehuels/wikireader/pkg/wiki"
)

// MaxMostRead caps the most-read list.
const MaxMostRead = 50

// PageviewFetcher returns the monthly pageview ranking. *wikipedia.Client
// satisfies it.
type PageviewFetcher interface {
	TopPageviews(ctx context.Context, year, month int) ([]wikipedia.TopArticle, error)
}

// MostRead returns up to 50 of the month's most-viewed pages, sorted by
// rank, without deny-listed titles, each with a thumbnail. Pages for which
// no thumbnail was found are dropped.
func MostRead(ctx context.Context, f PageviewFetcher, r *ThumbnailResolver, deny []string, month, year int) ([]Page, error) {
	articles, err := f.TopPageviews(ctx, year, month)
	if err != nil {
		return []Page{}, err
	}

	pages := make([]Page, 0, len(articles))
	for _, a := range articles {
		pages = append(pages, Page{Title: wiki.NormalizeTitle(a.Title), Rank: a.Rank, Views: a.Views})
	}
	sort.SliceStable(pages, func(i, j int) bool {
		return rankKey(pages[i].Rank) < rankKey(pages[j].Rank)
	})

	pages = filterDenied(pages, deny)
	if len(pages) > MaxMostRead {
		pages = pages[:MaxMostRead]
	}

	pages = r.Resolve(ctx, pages)

	out := pages[:0]
	for _, p := range pages {
		if p.Image != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

// rankKey sorts missing ranks after every real one.
func rankKey(rank int) int {
	if rank <= 0 {
		return math.MaxInt
	}
	return rank
}

func filterDenied(pages []Page, deny []string) []Page {
	out := pages[:0]
	for _, p := range pages {
		if !denied(p.Title, deny) {
			out = append(out, p)
		}
	}
	return out
}

func denied(title string, deny []string) bool {
	for _, d := range deny {
		if strings.Contains(title, d) {
			return true
		}
	}
	return false
}
