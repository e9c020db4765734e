package markdown

import (
	"net/url"
	"regexp"
	"strings"
)

// SanitizeURL filters a possibly-dangerous URL scheme. It percent-decodes
// raw; if decoding fails it returns ("", false) (the "null" case of spec
// §4.2). From the decoded form it strips every character outside
// [A-Za-z0-9/:], lowercases, and rejects (returns "", false) a result
// beginning with "javascript:", "vbscript:", or "data:". Otherwise it
// returns the original, unmodified raw string.
func SanitizeURL(raw string) (string, bool) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", false
	}
	var b strings.Builder
	for _, r := range strings.ToLower(decoded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '/', r == ':':
			b.WriteRune(r)
		}
	}
	stripped := b.String()
	for _, scheme := range rejectedURLSchemes {
		if strings.HasPrefix(stripped, scheme) {
			return "", false
		}
	}
	return raw, true
}

var rejectedURLSchemes = []string{"javascript:", "vbscript:", "data:"}

// htmlEscaper applies the fixed character-entity replacement table from
// spec §4.2. It intentionally differs from html.EscapeString's: it also
// escapes '/' and '`', and uses numeric entities for the apostrophe and
// slash, matching the exact set spec.md's testable properties pin down.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
	"`", "&#96;",
)

// SanitizeText escapes the seven characters < > & " ' / ` with their
// fixed entities and is a no-op elsewhere (spec §4.2, §8 property 7).
// & must be replaced first so the entities this function itself emits
// are not re-escaped; strings.Replacer already applies its replacements
// in a single non-overlapping left-to-right pass, which gives exactly
// that behavior.
func SanitizeText(s string) string {
	return htmlEscaper.Replace(s)
}

var urlUnescapePattern = regexp.MustCompile(`\\([^0-9A-Za-z\s])`)

// UnescapeURL removes a backslash preceding any non-alphanumeric,
// non-whitespace character (used on link hrefs before sanitizing them).
func UnescapeURL(s string) string {
	return urlUnescapePattern.ReplaceAllString(s, "$1")
}

var (
	crlfPattern = regexp.MustCompile("\r\n?")
)

// Preprocess normalizes line endings ("\r\n" and lone "\r" become "\n"),
// strips form feeds, and expands each tab to four spaces. It runs once,
// at the top of the outer parse entry point, before any rule sees the
// source (spec §4.2).
func Preprocess(s string) string {
	s = crlfPattern.ReplaceAllString(s, "\n")
	s = strings.ReplaceAll(s, "\f", "")
	s = strings.ReplaceAll(s, "\t", "    ")
	return s
}
