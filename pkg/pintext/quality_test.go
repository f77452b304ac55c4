package pintext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		wantUsable  bool
		wantText    string
	}{
		{
			name:       "emoji only",
			title:      "😍😍😍",
			wantUsable: false,
		},
		{
			name:        "punctuation only",
			title:       "!!! ...",
			description: "???",
			wantUsable:  false,
		},
		{
			name:       "numeric product code",
			title:      "12-345/678",
			wantUsable: false,
		},
		{
			name:       "deny-listed boilerplate",
			title:      "New Design",
			wantUsable: false,
		},
		{
			name:       "single short word",
			title:      "Boho",
			wantUsable: false,
		},
		{
			name:       "three words",
			title:      "linen summer dress",
			wantUsable: true,
			wantText:   "linen summer dress",
		},
		{
			name:        "short description without title",
			description: "Rattan chair",
			wantUsable:  true,
			wantText:    "Rattan chair",
		},
		{
			name:        "title and description joined",
			title:       "Cozy",
			description: "reading nook",
			wantUsable:  true,
			wantText:    "Cozy. reading nook",
		},
		{
			name:       "long single token",
			title:      "Scandinavianminimalistlivingroom",
			wantUsable: true,
			wantText:   "Scandinavianminimalistlivingroom",
		},
		{
			name:        "url only description",
			description: "https://example.com/some/path",
			wantUsable:  false,
		},
		{
			name:        "markup and urls stripped",
			title:       "**Mid-century** [lamp]",
			description: "see https://shop.example.com/lamp (walnut)",
			wantUsable:  true,
			wantText:    "Mid-century lamp. see walnut",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.title, tt.description)

			assert.Equal(t, tt.wantUsable, got.UsableForEmbedding)
			if tt.wantUsable {
				assert.Equal(t, TextQualityUsable, got.TextQuality)
				assert.Equal(t, tt.wantText, got.EmbeddingText)
			} else {
				assert.Equal(t, TextQualityLowSignal, got.TextQuality)
				assert.Empty(t, got.EmbeddingText)
			}
		})
	}
}

func TestClassifyRejectsSymbolOnlyText(t *testing.T) {
	inputs := []string{"🔥", "✨✨ 💕", "- - -", "#*~", "¡¿!?", "....", "👗👠👜 !!"}
	for _, in := range inputs {
		got := Classify(in, in)
		assert.False(t, got.UsableForEmbedding, "input %q", in)
	}
}

func TestClassifyAcceptsLongOrWordyText(t *testing.T) {
	inputs := []string{
		"warm neutral tones",
		"terracotta pots on a sunny balcony",
		"Minimalistwardrobeessentialsforfall",
	}
	for _, in := range inputs {
		got := Classify(in, "")
		assert.True(t, got.UsableForEmbedding, "input %q", in)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  -  ", ""},
		{"tab\there\nnewline", "tab here newline"},
		{"itâ€™s", "it's"},
		{"â€œquotedâ€", `"quoted"`},
		{"aâ€“b", "a-b"},
		{"aâ€”b", "a-b"},
		{"â€¢ bullet", "- bullet"},
		{"Â nbsp", "nbsp"},
		{"a\x00b\x7fc", "a b c"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clean(tt.in), "Clean(%q)", tt.in)
	}
}

func TestProductText(t *testing.T) {
	got := ProductText("Linen Shirt (Slim)", "Acme", "tops", []string{"summer", " ", "#linen"})
	assert.Equal(t, "Linen Shirt Slim . Acme. tops. summer linen", got)

	assert.Empty(t, ProductText("", " ", "", nil))
}
