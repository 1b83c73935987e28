// Package config defines wikireader's configuration value.
//
// A [Config] is built once at startup (defaults, then an optional TOML file,
// then WIKIREADER_* environment variables) and passed by value into every
// constructor. Nothing in the pipelines reads package-level settings, so
// several configurations (for example both skins in one test) can coexist.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wikireader/pkg/buildinfo"
	"github.com/matzehuels/wikireader/pkg/errors"
)

// Skin selects the target MediaWiki skin the embedded markup is styled for.
type Skin string

const (
	// SkinDesktop targets Vector 2022.
	SkinDesktop Skin = "desktop"
	// SkinMobile targets Minerva, the compact skin. Sections are collapsed
	// into disclosure widgets.
	SkinMobile Skin = "mobile"
)

// Compact reports whether the skin is the compact (mobile) layout.
func (s Skin) Compact() bool { return s == SkinMobile }

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// DefaultFeedURL is the Diff blog's syndication feed.
const DefaultFeedURL = "https://diff.wikimedia.org/feed/"

// Config is the complete runtime configuration.
type Config struct {
	Lang             string        `toml:"lang"`
	Skin             Skin          `toml:"skin"`
	SectionsExpanded bool          `toml:"sections_expanded"`
	UserAgent        string        `toml:"user_agent"`
	HTTPTimeout      time.Duration `toml:"http_timeout"`
	RateLimit        float64       `toml:"rate_limit"` // requests/second per upstream host, 0 = unlimited

	Cache   CacheConfig   `toml:"cache"`
	Edition EditionConfig `toml:"edition"`
	Server  ServerConfig  `toml:"server"`
}

// CacheConfig configures the upstream response cache.
type CacheConfig struct {
	Backend   string        `toml:"backend"`
	Dir       string        `toml:"dir"` // empty = $XDG_CACHE_HOME/wikireader
	TTL       time.Duration `toml:"ttl"`
	RedisAddr string        `toml:"redis_addr"`
}

// EditionConfig configures the edition sources.
type EditionConfig struct {
	ThumbWidth      int    `toml:"thumb_width"`
	PotdWidth       int    `toml:"potd_width"`
	CaptionTitles   int    `toml:"caption_titles"`
	ArchiveYears    int    `toml:"archive_years"`
	Concurrency     int    `toml:"concurrency"` // 0 = all sources at once, 1 = sequential
	Questions       string `toml:"questions"`   // path or URL; empty = embedded bank
	DenyList        string `toml:"deny_list"`   // path or URL; empty = embedded list
	FeedURL         string `toml:"feed_url"`
	BlogMonthFilter bool   `toml:"blog_month_filter"`

	Socials   []SocialLink `toml:"socials"`
	ThankYous ThankYous    `toml:"thank_yous"`
}

// SocialLink is one curated social-media highlight.
type SocialLink struct {
	Title string `toml:"title"`
	URL   string `toml:"url"`
	Image string `toml:"image"`
}

// ThankYous is the thank-you ledger shown in an edition.
type ThankYous struct {
	Total int            `toml:"total"`
	Paths []ThankYouPath `toml:"paths"`
}

// ThankYouPath is one "from thanked to" pair, both user names.
type ThankYouPath struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// ServerConfig configures `wikireader serve`.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Lang:        "en",
		Skin:        SkinDesktop,
		UserAgent:   buildinfo.UserAgent(),
		HTTPTimeout: 10 * time.Second,
		RateLimit:   10,
		Cache: CacheConfig{
			Backend: CacheFile,
			TTL:     time.Hour,
		},
		Edition: EditionConfig{
			ThumbWidth:    320,
			PotdWidth:     640,
			CaptionTitles: 3,
			ArchiveYears:  5,
			FeedURL:       DefaultFeedURL,
			Socials: []SocialLink{
				{Title: "Wikipedia on Instagram", URL: "https://www.instagram.com/wikipedia/"},
				{Title: "Wikipedia on Mastodon", URL: "https://wikis.world/@wikipedia"},
			},
			ThankYous: ThankYous{
				Total: 3203,
				Paths: []ThankYouPath{
					{From: "Jdlrobson", To: "Spartan"},
					{From: "HaeB", To: "X"},
					{From: "EricGardner", To: "AnneT"},
				},
			},
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load returns the defaults overlaid with the TOML file at path (if path is
// non-empty) and then with environment variables. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("WIKIREADER_LANG"); ok && v != "" {
		c.Lang = v
	}
	if v, ok := lookup("WIKIREADER_SKIN"); ok && v != "" {
		c.Skin = Skin(v)
	}
	if v, ok := lookup("WIKIREADER_SECTIONS_EXPANDED"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "WIKIREADER_SECTIONS_EXPANDED")
		}
		c.SectionsExpanded = b
	}
	if v, ok := lookup("WIKIREADER_CACHE"); ok && v != "" {
		c.Cache.Backend = v
	}
	if v, ok := lookup("WIKIREADER_REDIS_ADDR"); ok && v != "" {
		c.Cache.RedisAddr = v
		if _, set := lookup("WIKIREADER_CACHE"); !set {
			c.Cache.Backend = CacheRedis
		}
	}
	if v, ok := lookup("WIKIREADER_ADDR"); ok && v != "" {
		c.Server.Addr = v
	}
	return nil
}
