package edition

import (
	"github.com/matzehuels/wikireader/pkg/config"
	"github.com/matzehuels/wikireader/pkg/wiki"
)

// NewThankYous builds the ledger from configuration, linking each user to
// their user page.
func NewThankYous(lang string, cfg config.ThankYous) ThankYous {
	paths := make([]ThankYouPath, 0, len(cfg.Paths))
	for _, p := range cfg.Paths {
		paths = append(paths, ThankYouPath{
			From:    p.From,
			To:      p.To,
			FromURL: wiki.UserPageLink(lang, p.From),
			ToURL:   wiki.UserPageLink(lang, p.To),
		})
	}
	return ThankYous{Total: cfg.Total, Paths: paths}
}

// NewSocials returns the curated social highlights.
func NewSocials(links []config.SocialLink) []SocialPost {
	posts := make([]SocialPost, 0, len(links))
	for _, l := range links {
		posts = append(posts, SocialPost{Title: l.Title, URL: l.URL, Image: l.Image})
	}
	return posts
}
