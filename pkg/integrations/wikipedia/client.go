package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/wikireader/pkg/cache"
	"github.com/matzehuels/wikireader/pkg/integrations"
	"github.com/matzehuels/wikireader/pkg/wiki"
)

// MaxTitles is the Action API's limit on titles per query for anonymous
// clients.
const MaxTitles = 50

// Endpoints holds the base URLs the client talks to. Tests point them at an
// httptest server.
type Endpoints struct {
	REST    string // https://en.wikipedia.org/api/rest_v1
	Action  string // https://en.wikipedia.org/w/api.php
	Metrics string // https://wikimedia.org/api/rest_v1/metrics
	Project string // en.wikipedia
}

// DefaultEndpoints returns the production endpoints for a language edition.
func DefaultEndpoints(lang string) Endpoints {
	host := "https://" + lang + ".wikipedia.org"
	return Endpoints{
		REST:    host + "/api/rest_v1",
		Action:  host + "/w/api.php",
		Metrics: "https://wikimedia.org/api/rest_v1/metrics",
		Project: lang + ".wikipedia",
	}
}

// TopArticle is one entry of the monthly pageview ranking.
type TopArticle struct {
	Title string `json:"title"` // underscore form, as returned by the API
	Views int    `json:"views"`
	Rank  int    `json:"rank"` // 1-based; 0 when the API omitted it
}

// SearchResult is one OpenSearch suggestion.
type SearchResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Client provides access to one Wikipedia language edition.
// All methods are safe for concurrent use.
type Client struct {
	*integrations.Client
	endpoints Endpoints
}

// NewClient creates a Wikipedia client on top of the shared HTTP client.
func NewClient(base *integrations.Client, endpoints Endpoints) *Client {
	return &Client{Client: base, endpoints: endpoints}
}

// ArticleHTML retrieves the Parsoid HTML document for title.
//
// Returns an error unwrapping to [integrations.ErrNotFound] for missing
// articles; use [integrations.Status] to recover the upstream status of any
// non-success response.
func (c *Client) ArticleHTML(ctx context.Context, title string, refresh bool) (string, error) {
	u := c.endpoints.REST + "/page/html/" + wiki.EscapeTitle(title)

	var html string
	err := c.Cached(ctx, "html:"+wiki.NormalizeTitle(title), refresh, &html, func() error {
		text, err := c.GetText(ctx, u)
		if err != nil {
			return err
		}
		html = text
		return nil
	})
	return html, err
}

// TopPageviews returns the most-viewed articles of a month (0-indexed)
// across all access methods, in the order the API returns them.
func (c *Client) TopPageviews(ctx context.Context, year, month int) ([]TopArticle, error) {
	u := fmt.Sprintf("%s/pageviews/top/%s/all-access/%d/%s/all-days",
		c.endpoints.Metrics, c.endpoints.Project, year, wiki.PaddedMonth(month))

	var articles []TopArticle
	key := fmt.Sprintf("top:%d-%s", year, wiki.PaddedMonth(month))
	err := c.Cached(ctx, key, false, &articles, func() error {
		var data topResponse
		if err := c.Get(ctx, u, &data); err != nil {
			return err
		}
		articles = articles[:0]
		for _, item := range data.Items {
			for _, a := range item.Articles {
				articles = append(articles, TopArticle{Title: a.Article, Views: a.Views, Rank: a.Rank})
			}
		}
		return nil
	})
	return articles, err
}

// Thumbnails looks up page images for at most [MaxTitles] titles at the
// given pixel width. The result maps the title as returned by the API
// (normalized to underscore form) to the thumbnail URL; titles without an
// image are absent.
func (c *Client) Thumbnails(ctx context.Context, titles []string, width int) (map[string]string, error) {
	if len(titles) == 0 {
		return map[string]string{}, nil
	}
	if len(titles) > MaxTitles {
		return nil, fmt.Errorf("wikipedia: %d titles exceeds the %d title limit", len(titles), MaxTitles)
	}

	joined := strings.Join(titles, "|")
	params := url.Values{
		"action":        {"query"},
		"prop":          {"pageimages"},
		"piprop":        {"thumbnail"},
		"pithumbsize":   {strconv.Itoa(width)},
		"pilimit":       {strconv.Itoa(MaxTitles)},
		"titles":        {joined},
		"format":        {"json"},
		"formatversion": {"2"},
	}
	u := c.endpoints.Action + "?" + params.Encode()

	thumbs := map[string]string{}
	key := fmt.Sprintf("thumbs:%d:%s", width, cache.Hash([]byte(joined)))
	err := c.Cached(ctx, key, false, &thumbs, func() error {
		var data pageImagesResponse
		if err := c.Get(ctx, u, &data); err != nil {
			return err
		}
		clear(thumbs)
		for _, p := range data.Query.Pages {
			if p.Thumbnail != nil && p.Thumbnail.Source != "" {
				thumbs[wiki.NormalizeTitle(p.Title)] = p.Thumbnail.Source
			}
		}
		return nil
	})
	return thumbs, err
}

// Search returns up to limit title suggestions for query using the
// OpenSearch protocol. A blank query returns no results without a request.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return []SearchResult{}, nil
	}
	if limit <= 0 {
		limit = 10
	}
	params := url.Values{
		"action":    {"opensearch"},
		"search":    {query},
		"limit":     {strconv.Itoa(limit)},
		"namespace": {"0"},
		"format":    {"json"},
	}
	u := c.endpoints.Action + "?" + params.Encode()

	var raw []json.RawMessage
	if err := c.Retry(ctx, func() error { return c.Get(ctx, u, &raw) }); err != nil {
		return nil, err
	}
	return parseOpenSearch(raw), nil
}

// parseOpenSearch decodes [query, [titles], [descriptions], [urls]].
// Missing or malformed arrays are treated as empty.
func parseOpenSearch(raw []json.RawMessage) []SearchResult {
	var titles, descriptions []string
	if len(raw) > 1 {
		_ = json.Unmarshal(raw[1], &titles)
	}
	if len(raw) > 2 {
		_ = json.Unmarshal(raw[2], &descriptions)
	}

	results := make([]SearchResult, 0, len(titles))
	for i, t := range titles {
		r := SearchResult{Title: t}
		if i < len(descriptions) {
			r.Description = descriptions[i]
		}
		results = append(results, r)
	}
	return results
}

type topResponse struct {
	Items []struct {
		Articles []struct {
			Article string `json:"article"`
			Views   int    `json:"views"`
			Rank    int    `json:"rank"`
		} `json:"articles"`
	} `json:"items"`
}

type pageImagesResponse struct {
	Query struct {
		Pages []struct {
			Title     string `json:"title"`
			Missing   bool   `json:"missing"`
			Thumbnail *struct {
				Source string `json:"source"`
				Width  int    `json:"width"`
				Height int    `json:"height"`
			} `json:"thumbnail"`
		} `json:"pages"`
	} `json:"query"`
}
