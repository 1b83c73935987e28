package edition

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wikireader/pkg/integrations"
	"github.com/matzehuels/wikireader/pkg/integrations/commons"
	"github.com/matzehuels/wikireader/pkg/integrations/wikipedia"
)

var errUpstream = errors.New("upstream unavailable")

func quietLogger() *log.Logger { return log.New(io.Discard) }

// fakeThumbs serves thumbnails for titles present in images. Returned keys
// use spaces, like the real API. renamed maps a requested title to the
// canonical title the upstream reports instead.
type fakeThumbs struct {
	images  map[string]string
	renamed map[string]string
	fail    func(batch []string) bool

	mu      sync.Mutex
	batches [][]string
}

func (f *fakeThumbs) Thumbnails(_ context.Context, titles []string, _ int) (map[string]string, error) {
	f.mu.Lock()
	f.batches = append(f.batches, append([]string(nil), titles...))
	f.mu.Unlock()

	if f.fail != nil && f.fail(titles) {
		return nil, &integrations.StatusError{Code: 503, URL: "thumbs"}
	}
	out := map[string]string{}
	for _, t := range titles {
		name := t
		if r, ok := f.renamed[t]; ok {
			name = r
		}
		if src, ok := f.images[name]; ok {
			out[strings.ReplaceAll(name, "_", " ")] = src
		}
	}
	return out, nil
}

func (f *fakeThumbs) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.batches)
}

type fakePageviews struct {
	articles []wikipedia.TopArticle
	err      error
}

func (f *fakePageviews) TopPageviews(context.Context, int, int) ([]wikipedia.TopArticle, error) {
	return append([]wikipedia.TopArticle(nil), f.articles...), f.err
}

type fakeImages struct {
	titles    []string
	infos     []commons.Image
	err       error
	infoCalls int
}

func (f *fakeImages) TemplateImages(context.Context, string) ([]string, error) {
	return f.titles, f.err
}

func (f *fakeImages) ImageInfo(context.Context, []string, int) ([]commons.Image, error) {
	f.infoCalls++
	return f.infos, nil
}

// fakeText serves documents by URL.
type fakeText map[string]string

func (f fakeText) GetText(_ context.Context, url string) (string, error) {
	doc, ok := f[url]
	if !ok {
		return "", errUpstream
	}
	return doc, nil
}
