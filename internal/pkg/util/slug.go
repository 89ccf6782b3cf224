package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SlugMaxLen matches the blog_posts.slug column limit.
const SlugMaxLen = 200

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify maps a title to a lowercase, accent-stripped, hyphenated slug
// truncated to the column limit. Deterministic for a given input.
func Slugify(title string) string {
	stripped, _, err := transform.String(accentStripper, title)
	if err != nil {
		stripped = title
	}

	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(stripped) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > SlugMaxLen {
		slug = strings.Trim(slug[:SlugMaxLen], "-")
	}
	return slug
}
