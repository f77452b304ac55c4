package dto

type BoardResponse struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Privacy     string `json:"privacy"`
	PinCount    int    `json:"pinCount"`
}

type ListBoardsResponse struct {
	Boards   []BoardResponse `json:"boards"`
	Bookmark *string         `json:"bookmark"`
	PageSize int             `json:"pageSize"`
}

type ImportBoardRequest struct {
	BoardId string `json:"boardId" validate:"required"`
	// Limit is a number for leniency with clients sending 50.0; 0 means default.
	Limit float64 `json:"limit"`
}

type ImportBoardResponse struct {
	BoardId                 string `json:"boardId"`
	ImportedCount           int    `json:"importedCount"`
	UsableForEmbeddingCount int    `json:"usableForEmbeddingCount"`
	LowSignalCount          int    `json:"lowSignalCount"`
	CacheFile               string `json:"cacheFile"`
}

type ConnectionStatusResponse struct {
	Connected bool    `json:"connected"`
	Scope     *string `json:"scope"`
	ExpiresIn *int64  `json:"expiresIn"`
}
