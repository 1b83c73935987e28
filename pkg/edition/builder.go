package edition

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/wikireader/pkg/config"
	"github.com/matzehuels/wikireader/pkg/observability"
	"github.com/matzehuels/wikireader/pkg/wiki"
)

// Sources bundles the upstream clients the builder reads from.
type Sources struct {
	Pageviews  PageviewFetcher
	Thumbnails ThumbnailFetcher
	Images     ImageLibrary
	Text       TextFetcher // feed and external question/deny-list resources
}

// Builder assembles editions. Now and Rand may be replaced before the first
// Build for deterministic output.
//
// A Builder is safe for concurrent use.
type Builder struct {
	Now  func() time.Time
	Rand *rand.Rand

	mu     sync.Mutex // guards Rand
	lang   string
	cfg    config.EditionConfig
	src    Sources
	logger *log.Logger
}

// NewBuilder creates a builder. A nil logger uses log.Default().
func NewBuilder(cfg config.Config, src Sources, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{
		Now:    time.Now,
		Rand:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		lang:   cfg.Lang,
		cfg:    cfg.Edition,
		src:    src,
		logger: logger,
	}
}

// Build assembles the edition for the month before the current one.
func (b *Builder) Build(ctx context.Context) *Edition {
	month, year := wiki.NextEditionMonth(b.Now())
	return b.BuildFor(ctx, month, year)
}

// BuildFor assembles the edition for a 0-indexed month. It never fails:
// each source that errors contributes its empty value and is logged.
func (b *Builder) BuildFor(ctx context.Context, month, year int) *Edition {
	start := time.Now()
	archiveYear := year - b.cfg.ArchiveYears

	ed := &Edition{
		Draft:     true,
		Month:     month,
		MonthName: wiki.ReadableMonth(month),
		Year:      year,
		Intro:     append([]string(nil), Intro...),
		ThankYous: NewThankYous(b.lang, b.cfg.ThankYous),
		DiffBlog:  NewSection[BlogPost](nil),
		Socials:   NewSection(NewSocials(b.cfg.Socials)),
		Potd:      NewSection[PotdImage](nil),
	}
	ed.MostRead = newMostRead(b.lang, MostReadText, nil, b.cfg.CaptionTitles, month, year)
	ed.MostReadArchive = newMostRead(b.lang, RetroMostReadText, nil, b.cfg.CaptionTitles, month, archiveYear)

	resolver := NewThumbnailResolver(b.src.Thumbnails, b.cfg.ThumbWidth, b.logger)

	// Each randomized source gets its own generator, seeded in a fixed
	// order, so results do not depend on scheduling.
	questionRand := b.fork()
	potdRand := b.fork()

	var degraded atomic.Int32
	var g errgroup.Group
	if b.cfg.Concurrency > 0 {
		g.SetLimit(b.cfg.Concurrency)
	}
	run := func(name string, fn func() (int, error)) {
		g.Go(func() error {
			t := time.Now()
			n, err := fn()
			elapsed := time.Since(t)
			observability.Edition().OnSourceComplete(ctx, name, n, elapsed, err)
			if err != nil {
				degraded.Add(1)
				b.logger.Warn("edition source degraded", "source", name, "error", err)
				return nil
			}
			b.logger.Debug("edition source ready", "source", name, "items", n, "duration", elapsed)
			return nil
		})
	}

	run("mostRead", func() (int, error) {
		pages, err := b.mostRead(ctx, resolver, month, year)
		ed.MostRead = newMostRead(b.lang, MostReadText, pages, b.cfg.CaptionTitles, month, year)
		return len(pages), err
	})
	run("mostReadArchive", func() (int, error) {
		pages, err := b.mostRead(ctx, resolver, month, archiveYear)
		ed.MostReadArchive = newMostRead(b.lang, RetroMostReadText, pages, b.cfg.CaptionTitles, month, archiveYear)
		return len(pages), err
	})
	run("question", func() (int, error) {
		text, err := LoadResource(ctx, b.src.Text, b.cfg.Questions, defaultQuestions)
		if err != nil {
			return 0, err
		}
		q, err := PickQuestion(ctx, ParseQuestions(text), resolver, questionRand)
		if err != nil {
			return 0, err
		}
		ed.Question = q
		return 1, nil
	})
	run("thankYous", func() (int, error) {
		return len(ed.ThankYous.Paths), nil
	})
	run("diffBlog", func() (int, error) {
		posts, err := Blog(ctx, b.src.Text, BlogOptions{
			FeedURL:     b.cfg.FeedURL,
			MonthFilter: b.cfg.BlogMonthFilter,
			Month:       month,
			Year:        year,
		})
		ed.DiffBlog = NewSection(posts)
		return len(posts), err
	})
	run("socials", func() (int, error) {
		return len(ed.Socials.Pages), nil
	})
	run("potd", func() (int, error) {
		images, err := PictureOfTheDay(ctx, b.src.Images, month, year, b.cfg.PotdWidth, potdRand)
		ed.Potd = NewSection(images)
		return len(images), err
	})

	_ = g.Wait()

	n := int(degraded.Load())
	observability.Edition().OnEditionComplete(ctx, n, time.Since(start))
	b.logger.Info("edition assembled", "month", ed.MonthName, "year", year, "degraded", n, "duration", time.Since(start))
	return ed
}

func (b *Builder) mostRead(ctx context.Context, r *ThumbnailResolver, month, year int) ([]Page, error) {
	text, err := LoadResource(ctx, b.src.Text, b.cfg.DenyList, defaultDenyList)
	if err != nil {
		return []Page{}, err
	}
	return MostRead(ctx, b.src.Pageviews, r, ParseDenyList(text), month, year)
}

func (b *Builder) fork() *rand.Rand {
	b.mu.Lock()
	defer b.mu.Unlock()
	return rand.New(rand.NewPCG(b.Rand.Uint64(), b.Rand.Uint64()))
}
