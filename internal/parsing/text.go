package parsing

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRe        = regexp.MustCompile(`\s+`)
	trailingCompanyRe   = regexp.MustCompile(`[,.\s|]+$`)
	trailingInstituteRe = regexp.MustCompile(`[,|]+$`)
	trailingPunctRe     = regexp.MustCompile(`[,:]+$`)
)

// collapseWhitespace replaces runs of whitespace with a single space and
// trims the result.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// titleCase capitalizes the first letter of every word and lowercases the
// rest. A word is any run of letters; digits and punctuation act as
// separators ("rest api" -> "Rest Api", "node.js" -> "Node.Js").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// isAllUpper reports whether s contains at least one cased letter and every
// cased letter is upper case.
func isAllUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

// truncateRunes returns at most n runes of s.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
