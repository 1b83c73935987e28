package edition

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wikireader/pkg/wiki"
)

// thumbnailBatch is the upstream limit on titles per lookup.
const thumbnailBatch = 50

// ThumbnailFetcher looks up page images for one batch of titles. The result
// is keyed by the title as the upstream returned it. *wikipedia.Client
// satisfies it.
type ThumbnailFetcher interface {
	Thumbnails(ctx context.Context, titles []string, width int) (map[string]string, error)
}

// ThumbnailResolver fills in Page.Image in batches.
type ThumbnailResolver struct {
	fetcher ThumbnailFetcher
	width   int
	logger  *log.Logger
}

// NewThumbnailResolver creates a resolver requesting thumbnails of width
// pixels.
func NewThumbnailResolver(f ThumbnailFetcher, width int, logger *log.Logger) *ThumbnailResolver {
	if logger == nil {
		logger = log.Default()
	}
	return &ThumbnailResolver{fetcher: f, width: width, logger: logger}
}

// Resolve sets Image on every page a thumbnail was found for and returns
// pages. Order and length never change. A failed batch is skipped and its
// pages keep their current Image. Titles the upstream reports under a
// different canonical name (redirects) are not matched.
func (r *ThumbnailResolver) Resolve(ctx context.Context, pages []Page) []Page {
	if len(pages) == 0 {
		return pages
	}

	index := make(map[string][]int, len(pages))
	var titles []string
	for i := range pages {
		key := wiki.NormalizeTitle(pages[i].Title)
		if _, seen := index[key]; !seen {
			titles = append(titles, key)
		}
		index[key] = append(index[key], i)
	}

	for start := 0; start < len(titles); start += thumbnailBatch {
		batch := titles[start:min(start+thumbnailBatch, len(titles))]
		thumbs, err := r.fetcher.Thumbnails(ctx, batch, r.width)
		if err != nil {
			r.logger.Debug("thumbnail batch skipped", "titles", len(batch), "error", err)
			continue
		}
		for title, src := range thumbs {
			for _, i := range index[wiki.NormalizeTitle(title)] {
				pages[i].Image = src
			}
		}
	}
	return pages
}
