package slug

import (
	"net/url"
	"regexp"
	"strings"
)

const maxLength = 50

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Generate turns s into a lowercase, hyphen-separated, filename-safe slug
func Generate(s string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(s), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "default"
	}
	if len(slug) > maxLength {
		slug = strings.TrimRight(slug[:maxLength], "-")
	}
	return slug
}

// FromURL slugs the host and port of rawURL, so every API server gets its
// own name regardless of scheme or path
func FromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return Generate(rawURL)
	}
	return Generate(u.Host)
}
