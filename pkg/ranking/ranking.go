package ranking

import (
	"sort"

	"style-match-be/pkg/vector"
)

// Candidate is one catalog item with its embedding.
type Candidate struct {
	ID        string
	Embedding []float32
}

type Scored struct {
	ID    string
	Score float64
}

// Rank scores every candidate against the profile and returns them best first.
// Equal scores keep catalog order. topK <= 0 returns every candidate.
func Rank(profile []float32, candidates []Candidate, topK int) []Scored {
	scored := make([]Scored, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, Scored{ID: c.ID, Score: vector.Cosine(profile, c.Embedding)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK > 0 && len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}
