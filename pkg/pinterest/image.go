package pinterest

import (
	"sort"
	"strings"
)

// imageKeyOrder is the order media.images variants are tried in. Unknown keys
// come after these, alphabetically.
var imageKeyOrder = []string{"150x150", "400x300", "600x", "736x", "1200x", "originals"}

// BoostImageUrl upgrades a thumbnail URL to the 736px wide rendition.
func BoostImageUrl(url string) string {
	if url == "" {
		return ""
	}
	return strings.Replace(url, "/150x150/", "/736x/", 1)
}

// ImageUrl picks the image of a pin: a media.images variant first, then the
// first image entry of media_list. Empty when the pin has neither.
func ImageUrl(p Pin) string {
	if p.Media != nil && len(p.Media.Images) > 0 {
		for _, key := range imageKeys(p.Media.Images) {
			if img := p.Media.Images[key]; img.Url != "" {
				return BoostImageUrl(img.Url)
			}
		}
	}
	for _, item := range p.MediaList {
		if item.MediaType == "image" && item.ImageUrl != "" {
			return BoostImageUrl(item.ImageUrl)
		}
	}
	return ""
}

func imageKeys(images map[string]Image) []string {
	known := make(map[string]bool, len(imageKeyOrder))
	keys := make([]string, 0, len(images))
	for _, k := range imageKeyOrder {
		known[k] = true
		if _, ok := images[k]; ok {
			keys = append(keys, k)
		}
	}
	var rest []string
	for k := range images {
		if !known[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
