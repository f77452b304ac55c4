package pintext

import (
	"regexp"
	"strings"
)

// mojibake repairs the most common UTF-8-read-as-Latin-1 artifacts seen in pin text.
// Longer sequences come first so "â€™" is not swallowed by the bare "â€" prefix.
var mojibake = strings.NewReplacer(
	"â€™", "'",
	"â€œ", `"`,
	"â€“", "-",
	"â€”", "-",
	"â€¢", "-",
	"â€", `"`,
	"Â", "",
)

var (
	urlPattern    = regexp.MustCompile(`(?i)\b[a-z][a-z0-9+.\-]*://\S+`)
	markupPattern = regexp.MustCompile("[#*_~`|<>\\[\\]{}()]")
)

// Clean strips control characters, repairs mojibake and collapses whitespace.
func Clean(value string) string {
	text := strings.Map(func(r rune) rune {
		if r <= 0x1F || r == 0x7F {
			return ' '
		}
		return r
	}, value)
	text = collapse(text)

	text = collapse(mojibake.Replace(text))
	if text == "-" {
		return ""
	}
	return text
}

// RemoveURLs blanks out scheme://... tokens.
func RemoveURLs(value string) string {
	return urlPattern.ReplaceAllString(value, " ")
}

// NormalizeForEmbedding drops markup control characters.
func NormalizeForEmbedding(value string) string {
	if value == "" {
		return ""
	}
	return collapse(markupPattern.ReplaceAllString(value, " "))
}

// CountWords counts whitespace separated tokens.
func CountWords(value string) int {
	return len(strings.Fields(value))
}

func collapse(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
