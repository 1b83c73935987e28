package edition

import (
	"context"
	_ "embed"
	"html"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/matzehuels/wikireader/pkg/errors"
	"github.com/matzehuels/wikireader/pkg/wiki"
)

//go:embed data/questions.txt
var defaultQuestions string

//go:embed data/denylist.txt
var defaultDenyList string

// TextFetcher retrieves a remote text resource. *integrations.Client and the
// API clients embedding it satisfy it.
type TextFetcher interface {
	GetText(ctx context.Context, url string) (string, error)
}

// LoadResource returns the text at location: the embedded fallback when
// location is empty, a remote document for http(s) URLs, otherwise a local
// file.
func LoadResource(ctx context.Context, f TextFetcher, location, fallback string) (string, error) {
	switch {
	case location == "":
		return fallback, nil
	case strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://"):
		if err := errors.ValidateURL(location); err != nil {
			return "", err
		}
		return f.GetText(ctx, location)
	default:
		data, err := os.ReadFile(location)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeNotFound, err, "read %s", location)
		}
		return string(data), nil
	}
}

// ParseDenyList returns the non-empty, non-comment lines of text.
func ParseDenyList(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// ParseQuestions parses "text,title" rows. The first line is a header and
// is skipped. The title is everything after the last comma so question text
// may itself contain commas. Rows without a comma are ignored, and markup in
// the text is stripped.
func ParseQuestions(text string) []Question {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}

	policy := bluemonday.StrictPolicy()
	var out []Question
	for _, line := range lines {
		i := strings.LastIndex(line, ",")
		if i < 0 {
			continue
		}
		q := strings.TrimSpace(html.UnescapeString(policy.Sanitize(line[:i])))
		title := wiki.NormalizeTitle(line[i+1:])
		if q == "" || title == "" {
			continue
		}
		out = append(out, Question{Page: Page{Title: title}, Text: q})
	}
	return out
}
