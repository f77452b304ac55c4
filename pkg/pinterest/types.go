package pinterest

// Every field Pinterest may omit is optional here; callers read zero values.

type Board struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Privacy     string `json:"privacy"`
	PinCount    *int   `json:"pin_count"`
}

type BoardPage struct {
	Items    []Board `json:"items"`
	Bookmark string  `json:"bookmark"`
}

type Image struct {
	Url    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Media struct {
	MediaType string           `json:"media_type"`
	Images    map[string]Image `json:"images"`
}

type MediaListItem struct {
	MediaType string `json:"media_type"`
	ImageUrl  string `json:"image_url"`
}

type Pin struct {
	Id             string          `json:"id"`
	Title          string          `json:"title"`
	Note           string          `json:"note"`
	Description    string          `json:"description"`
	AltText        string          `json:"alt_text"`
	Link           string          `json:"link"`
	DominantColor  string          `json:"dominant_color"`
	CreatedAt      string          `json:"created_at"`
	MediaType      string          `json:"media_type"`
	BoardSectionId string          `json:"board_section_id"`
	Media          *Media          `json:"media"`
	MediaList      []MediaListItem `json:"media_list"`
}

type PinPage struct {
	Items    []Pin  `json:"items"`
	Bookmark string `json:"bookmark"`
}
