// Package wiki holds small helpers for wiki titles, edition months and
// links that both pipelines share.
package wiki

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// NormalizeTitle converts a title to underscore-separated wiki form.
func NormalizeTitle(title string) string {
	return strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
}

// DisplayTitle converts a title to its human-readable, space-separated form.
func DisplayTitle(title string) string {
	return strings.ReplaceAll(strings.TrimSpace(title), "_", " ")
}

// EscapeTitle normalizes a title and percent-encodes it as a single URL path
// segment, so "AC/DC" becomes "AC%2FDC".
func EscapeTitle(title string) string {
	return url.PathEscape(NormalizeTitle(title))
}

// NextEditionMonth returns the 0-indexed month and the year of the edition
// being prepared at now: the calendar month before now's month. In January
// it wraps to December of the previous year.
func NextEditionMonth(now time.Time) (month, year int) {
	current := int(now.Month()) - 1
	if current == 0 {
		return 11, now.Year() - 1
	}
	return current - 1, now.Year()
}

// ReadableMonth returns the English name of a 0-indexed month, or "" when m
// is out of range.
func ReadableMonth(m int) string {
	if m < 0 || m > 11 {
		return ""
	}
	return monthNames[m]
}

// PaddedMonth returns the 1-indexed, zero-padded form of a 0-indexed month
// ("01".."12") used by the pageview and Commons APIs.
func PaddedMonth(m int) string {
	return fmt.Sprintf("%02d", m+1)
}

// TitleToLink returns the canonical article URL on the given language
// edition. Slashes in subpage titles are kept readable.
func TitleToLink(lang, title string) string {
	return "https://" + lang + ".wikipedia.org/wiki/" + strings.ReplaceAll(EscapeTitle(title), "%2F", "/")
}

// UserPageLink returns the URL of a user's page.
func UserPageLink(lang, user string) string {
	return TitleToLink(lang, "User:"+user)
}

var wikilinkRE = regexp.MustCompile(`\[\[\s*([^\]|]+?)\s*\]\]`)

// WikitextToHTML performs the one wikitext substitution the edition captions
// need: the title inside every [[ Title ]] becomes an HTML link to the
// article, keeping the surrounding brackets. All other text is HTML-escaped.
func WikitextToHTML(lang, text string) string {
	var b strings.Builder
	last := 0
	for _, m := range wikilinkRE.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(html.EscapeString(text[last:m[0]]))
		title := text[m[2]:m[3]]
		fmt.Fprintf(&b, `[[ <a href="%s">%s</a> ]]`, html.EscapeString(TitleToLink(lang, title)), html.EscapeString(DisplayTitle(title)))
		last = m[1]
	}
	b.WriteString(html.EscapeString(text[last:]))
	return b.String()
}
