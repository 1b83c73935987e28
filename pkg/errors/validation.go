package errors

import (
	"strings"
	"unicode"
)

// maxTitleBytes is the MediaWiki page title length limit.
const maxTitleBytes = 255

// illegalTitleChars are characters MediaWiki never allows in a page title.
const illegalTitleChars = "#<>[]|{}"

// ValidateTitle validates an article title before it is used to build an
// upstream URL or a route.
//
// The validation rules mirror MediaWiki's own title restrictions:
//   - No empty or whitespace-only titles
//   - Maximum length of 255 bytes
//   - No control characters
//   - None of the characters # < > [ ] | { }
//   - No relative path segments ("." or "..")
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return New(ErrCodeInvalidTitle, "title cannot be empty")
	}

	if len(title) > maxTitleBytes {
		return New(ErrCodeInvalidTitle, "title too long (max %d bytes)", maxTitleBytes)
	}

	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTitle, "title contains invalid control characters")
		}
	}

	if i := strings.IndexAny(title, illegalTitleChars); i >= 0 {
		return New(ErrCodeInvalidTitle, "title contains invalid character: %q", title[i])
	}

	for _, seg := range strings.Split(title, "/") {
		if seg == "." || seg == ".." {
			return New(ErrCodeInvalidTitle, "title cannot contain relative path segments")
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
