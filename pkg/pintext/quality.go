package pintext

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type TextQuality string

const (
	TextQualityUsable    TextQuality = "usable"
	TextQualityLowSignal TextQuality = "low_signal"
)

// minCombinedLength is the character count at which a combined text is accepted
// regardless of its word counts.
const minCombinedLength = 28

var (
	letterRun     = regexp.MustCompile(`\p{L}{2,}`)
	numericOnly   = regexp.MustCompile(`^[\d\s\-_/.,]+$`)
	lowSignalText = map[string]struct{}{
		"new design":      {},
		"neck design":     {},
		"sleeves design":  {},
		"sleeves designs": {},
	}
)

type Quality struct {
	EmbeddingText      string
	UsableForEmbedding bool
	TextQuality        TextQuality
}

// PrepareField runs the full cleanup chain used for embedding text.
func PrepareField(value string) string {
	return NormalizeForEmbedding(RemoveURLs(Clean(value)))
}

// Classify builds the embedding text for a pin and decides whether it carries
// enough signal to be embedded at all.
func Classify(title, description string) Quality {
	titleClean := PrepareField(title)
	descClean := PrepareField(description)

	combined := joinNonEmpty(". ", titleClean, descClean)

	usable := hasSignal(combined) &&
		(CountWords(combined) >= 3 ||
			CountWords(descClean) >= 2 ||
			CountWords(titleClean) >= 2 ||
			utf8.RuneCountInString(combined) >= minCombinedLength)

	if !usable {
		return Quality{TextQuality: TextQualityLowSignal}
	}
	return Quality{
		EmbeddingText:      combined,
		UsableForEmbedding: true,
		TextQuality:        TextQualityUsable,
	}
}

func hasSignal(text string) bool {
	if !letterRun.MatchString(text) || numericOnly.MatchString(text) {
		return false
	}
	_, denied := lowSignalText[strings.ToLower(text)]
	return !denied
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.TrimSpace(strings.Join(kept, sep))
}
