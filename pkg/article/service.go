package article

import (
	"context"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/wikireader/pkg/errors"
	"github.com/matzehuels/wikireader/pkg/integrations"
	"github.com/matzehuels/wikireader/pkg/observability"
	"github.com/matzehuels/wikireader/pkg/wiki"
)

// Fetcher retrieves rendered article markup. *wikipedia.Client satisfies it.
type Fetcher interface {
	ArticleHTML(ctx context.Context, title string, refresh bool) (string, error)
}

// Service fetches and transforms articles. Concurrent requests for the same
// title share one upstream fetch.
//
// A Service is safe for concurrent use.
type Service struct {
	fetcher Fetcher
	opts    Options
	logger  *log.Logger
	group   singleflight.Group
}

// NewService creates an article service. A nil logger uses log.Default().
func NewService(f Fetcher, opts Options, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{fetcher: f, opts: opts, logger: logger}
}

// sharedFetchTimeout bounds a shared fetch once it no longer follows any
// single caller's context.
const sharedFetchTimeout = 30 * time.Second

// Fetch returns the transformed body markup of title.
//
// Invalid titles fail with code INVALID_TITLE. Any upstream failure is
// returned as *errors.FetchError carrying the HTTP status when there was
// one; cancellation of ctx is returned unwrapped and only affects this
// caller. Other callers sharing the fetch still receive its result.
func (s *Service) Fetch(ctx context.Context, title string, refresh bool) (string, error) {
	if err := errors.ValidateTitle(title); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key := wiki.NormalizeTitle(title)
	flight := key
	if refresh {
		flight += "\x00refresh"
	}

	start := time.Now()
	ch := s.group.DoChan(flight, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()
		markup, err := s.fetcher.ArticleHTML(fctx, title, refresh)
		if err != nil {
			return "", err
		}
		return Transform(markup, s.opts)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		observability.Edition().OnArticleComplete(ctx, time.Since(start), ctx.Err())
		return "", ctx.Err()
	case res = <-ch:
	}
	elapsed := time.Since(start)
	observability.Edition().OnArticleComplete(ctx, elapsed, res.Err)

	if err := res.Err; err != nil {
		if errors.GetCode(err) == errors.ErrCodeParseFailed {
			return "", err
		}
		s.logger.Warn("article fetch failed", "title", key, "error", err)
		return "", &errors.FetchError{Title: key, Status: integrations.Status(err), Err: err}
	}

	s.logger.Debug("article ready", "title", key, "shared", res.Shared, "duration", elapsed)
	return res.Val.(string), nil
}

// Markdown fetches title and converts the transformed body to Markdown.
func (s *Service) Markdown(ctx context.Context, title string, refresh bool) (string, error) {
	body, err := s.Fetch(ctx, title, refresh)
	if err != nil {
		return "", err
	}
	converter := md.NewConverter("", true, nil)
	out, err := converter.ConvertString(body)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeParseFailed, err, "convert %s to markdown", wiki.NormalizeTitle(title))
	}
	return out, nil
}
