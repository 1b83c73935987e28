package config

import (
	"regexp"

	"github.com/matzehuels/wikireader/pkg/errors"
)

// langRE matches Wikipedia language edition codes ("en", "de", "zh-yue", "simple").
var langRE = regexp.MustCompile(`^[a-z]{2,3}(-[a-z]+)*$|^simple$`)

// Validate checks the configuration for values the pipelines cannot work
// with. It returns an INVALID_CONFIG error naming the first bad field.
func (c Config) Validate() error {
	if !langRE.MatchString(c.Lang) {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid language edition %q", c.Lang)
	}
	switch c.Skin {
	case SkinDesktop, SkinMobile:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "invalid skin %q (want %q or %q)", c.Skin, SkinDesktop, SkinMobile)
	}
	if c.HTTPTimeout <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "http_timeout must be positive")
	}
	if c.RateLimit < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "rate_limit cannot be negative")
	}

	switch c.Cache.Backend {
	case CacheFile, CacheNone:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache backend redis requires redis_addr")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "invalid cache backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl cannot be negative")
	}

	e := c.Edition
	if e.ThumbWidth <= 0 || e.PotdWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "thumbnail widths must be positive")
	}
	if e.CaptionTitles < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "caption_titles must be at least 1")
	}
	if e.ArchiveYears < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "archive_years must be at least 1")
	}
	if e.Concurrency < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "concurrency cannot be negative")
	}
	if e.FeedURL != "" {
		if err := errors.ValidateURL(e.FeedURL); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "feed_url")
		}
	}
	return nil
}
