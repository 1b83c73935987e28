package cli

import (
	"context"

	"github.com/matzehuels/wikireader/pkg/article"
	"github.com/matzehuels/wikireader/pkg/cache"
	"github.com/matzehuels/wikireader/pkg/config"
	"github.com/matzehuels/wikireader/pkg/edition"
	"github.com/matzehuels/wikireader/pkg/httputil"
	"github.com/matzehuels/wikireader/pkg/integrations"
	"github.com/matzehuels/wikireader/pkg/integrations/commons"
	"github.com/matzehuels/wikireader/pkg/integrations/wikipedia"
)

// app is the wired pipeline set shared by the commands.
type app struct {
	cfg       config.Config
	cache     cache.Cache
	wikipedia *wikipedia.Client
	articles  *article.Service
	editions  *edition.Builder
}

// newApp loads configuration and wires clients, cache and pipelines.
// The caller must Close the app.
func (c *CLI) newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}

	backend, err := c.openCache(ctx, cfg)
	if err != nil {
		return nil, err
	}

	limiter := httputil.NewHostLimiter(cfg.RateLimit, max(1, int(cfg.RateLimit)))
	headers := integrations.UserAgentHeaders(cfg.UserAgent)
	opts := []integrations.Option{
		integrations.WithHTTPClient(integrations.NewHTTPClient(cfg.HTTPTimeout)),
		integrations.WithLimiter(limiter),
	}

	wp := wikipedia.NewClient(
		integrations.NewClient(backend, "wikipedia:"+cfg.Lang+":", cfg.Cache.TTL, headers, opts...),
		wikipedia.DefaultEndpoints(cfg.Lang))
	cm := commons.NewClient(
		integrations.NewClient(backend, "commons:", cfg.Cache.TTL, headers, opts...), "")
	// Feeds and external resources change independently of the wikis and
	// are fetched fresh.
	text := integrations.NewClient(nil, "text:", 0, headers, opts...)

	return &app{
		cfg:       cfg,
		cache:     backend,
		wikipedia: wp,
		articles:  article.NewService(wp, article.OptionsFromConfig(cfg), c.Logger),
		editions: edition.NewBuilder(cfg, edition.Sources{
			Pageviews:  wp,
			Thumbnails: wp,
			Images:     cm,
			Text:       text,
		}, c.Logger),
	}, nil
}

// Close releases the cache backend.
func (a *app) Close() error {
	return a.cache.Close()
}

// openCache selects the cache backend. An unusable file cache directory
// degrades to no caching; an unreachable Redis is an error.
func (c *CLI) openCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	if c.noCache || cfg.Cache.Backend == config.CacheNone {
		return cache.NewNullCache(), nil
	}

	if cfg.Cache.Backend == config.CacheRedis {
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.RedisAddr)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("using redis cache", "addr", cfg.Cache.RedisAddr)
		return cache.NewNamespaced(rc, appName+":"), nil
	}

	dir, err := resolveCacheDir(cfg.Cache.Dir)
	if err != nil {
		c.Logger.Warn("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cache disabled", "dir", dir, "error", err)
		return cache.NewNullCache(), nil
	}
	c.Logger.Debug("using file cache", "dir", dir)
	return fc, nil
}
