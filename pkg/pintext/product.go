package pintext

import "strings"

// ProductText builds the string a catalog product is embedded with:
// name, brand, category and tags. An empty result means the product has nothing to embed.
func ProductText(name, brand, category string, tags []string) string {
	cleanTags := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := Clean(tag); t != "" {
			cleanTags = append(cleanTags, t)
		}
	}

	return NormalizeForEmbedding(joinNonEmpty(". ",
		Clean(name),
		Clean(brand),
		Clean(category),
		strings.Join(cleanTags, " "),
	))
}
