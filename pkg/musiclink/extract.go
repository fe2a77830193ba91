package musiclink

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	urlRegex        = regexp.MustCompile(`https?://\S+`)
	spotifyURIRegex = regexp.MustCompile(`spotify:\w+:\w+`)
)

// ExtractURL returns the first music link in text, which may be a bare URL or
// a pasted share message such as "Listen to this: https://... !". When no
// link is found the trimmed input is returned. A bare URL is returned
// verbatim; only share text is NFKC-normalized before matching.
func ExtractURL(text string) string {
	text = strings.TrimSpace(text)
	if isURL(text) {
		return text
	}
	text = norm.NFKC.String(text)

	for _, match := range urlRegex.FindAllString(text, -1) {
		if candidate := strings.TrimRight(match, ".,!?;)\"'"); isURL(candidate) {
			return candidate
		}
	}

	if match := spotifyURIRegex.FindString(text); match != "" {
		return match
	}

	return text
}

// isURL reports whether s is a single absolute http(s) URL with a host.
func isURL(s string) bool {
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
