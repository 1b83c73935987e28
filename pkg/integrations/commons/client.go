package commons

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/wikireader/pkg/cache"
	"github.com/matzehuels/wikireader/pkg/integrations"
)

const (
	// DefaultAPI is the production Action API endpoint.
	DefaultAPI = "https://commons.wikimedia.org/w/api.php"

	// FileBase prefixes a file title to form its description page URL.
	FileBase = "https://commons.wikimedia.org/wiki/"

	maxTitles = 50
)

// Image describes one file resolved through image info.
type Image struct {
	Title          string `json:"title"`
	ThumbURL       string `json:"thumb_url,omitempty"`
	URL            string `json:"url"`
	DescriptionURL string `json:"description_url,omitempty"`
}

// Client provides access to the Commons Action API.
type Client struct {
	*integrations.Client
	api string
}

// NewClient creates a Commons client. An empty api uses [DefaultAPI].
func NewClient(base *integrations.Client, api string) *Client {
	if api == "" {
		api = DefaultAPI
	}
	return &Client{Client: base, api: api}
}

// TemplateImages returns the titles of all files embedded in page, in the
// order the API lists them. A missing page yields an empty list.
func (c *Client) TemplateImages(ctx context.Context, page string) ([]string, error) {
	params := url.Values{
		"action":        {"query"},
		"titles":        {page},
		"prop":          {"images"},
		"imlimit":       {"max"},
		"format":        {"json"},
		"formatversion": {"2"},
	}
	u := c.api + "?" + params.Encode()

	var titles []string
	err := c.Cached(ctx, "images:"+page, false, &titles, func() error {
		var data imagesResponse
		if err := c.Get(ctx, u, &data); err != nil {
			return err
		}
		titles = titles[:0]
		for _, p := range data.Query.Pages {
			for _, img := range p.Images {
				titles = append(titles, img.Title)
			}
		}
		return nil
	})
	return titles, err
}

// ImageInfo resolves file titles to their URLs, with a thumbnail scaled to
// width. Titles are queried in batches of 50. Files the API does not know
// are omitted.
func (c *Client) ImageInfo(ctx context.Context, titles []string, width int) ([]Image, error) {
	images := []Image{}
	for start := 0; start < len(titles); start += maxTitles {
		end := min(start+maxTitles, len(titles))
		batch, err := c.imageInfo(ctx, titles[start:end], width)
		if err != nil {
			return images, err
		}
		images = append(images, batch...)
	}
	return images, nil
}

func (c *Client) imageInfo(ctx context.Context, titles []string, width int) ([]Image, error) {
	joined := strings.Join(titles, "|")
	params := url.Values{
		"action":        {"query"},
		"titles":        {joined},
		"prop":          {"imageinfo"},
		"iiprop":        {"url"},
		"iiurlwidth":    {strconv.Itoa(width)},
		"format":        {"json"},
		"formatversion": {"2"},
	}
	u := c.api + "?" + params.Encode()

	var images []Image
	key := fmt.Sprintf("imageinfo:%d:%s", width, cache.Hash([]byte(joined)))
	err := c.Cached(ctx, key, false, &images, func() error {
		var data imageInfoResponse
		if err := c.Get(ctx, u, &data); err != nil {
			return err
		}
		images = images[:0]
		for _, p := range data.Query.Pages {
			if len(p.ImageInfo) == 0 {
				continue
			}
			info := p.ImageInfo[0]
			images = append(images, Image{
				Title:          p.Title,
				ThumbURL:       info.ThumbURL,
				URL:            info.URL,
				DescriptionURL: info.DescriptionURL,
			})
		}
		return nil
	})
	return images, err
}

// FileURL returns the description page URL of a file title.
func FileURL(title string) string {
	return FileBase + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}

type imagesResponse struct {
	Query struct {
		Pages []struct {
			Title  string `json:"title"`
			Images []struct {
				Title string `json:"title"`
			} `json:"images"`
		} `json:"pages"`
	} `json:"query"`
}

type imageInfoResponse struct {
	Query struct {
		Pages []struct {
			Title     string `json:"title"`
			ImageInfo []struct {
				ThumbURL       string `json:"thumburl"`
				URL            string `json:"url"`
				DescriptionURL string `json:"descriptionurl"`
			} `json:"imageinfo"`
		} `json:"pages"`
	} `json:"query"`
}
