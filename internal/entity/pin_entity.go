package entity

type PinMetadata struct {
	CreatedAt      string `json:"createdAt"`
	DominantColor  string `json:"dominantColor"`
	MediaType      string `json:"mediaType"`
	BoardSectionId string `json:"boardSectionId"`
}

// Pin is one normalized item of an imported board.
type Pin struct {
	PinId              string      `json:"pinId"`
	BoardId            string      `json:"boardId"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	AltText            string      `json:"altText"`
	Link               string      `json:"link"`
	ImageUrl           string      `json:"imageUrl"`
	EmbeddingText      string      `json:"embeddingText"`
	UsableForEmbedding bool        `json:"usableForEmbedding"`
	TextQuality        string      `json:"textQuality"`
	Metadata           PinMetadata `json:"metadata"`
}
