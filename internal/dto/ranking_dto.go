package dto

import "style-match-be/internal/entity"

type RankProductsRequest struct {
	BoardId string  `json:"boardId" validate:"required"`
	TopK    float64 `json:"topK"`
}

type RankedProduct struct {
	entity.Product
	Score float64 `json:"score"`
}

type RankProductsResponse struct {
	BoardId        string          `json:"boardId"`
	PinsUsed       int             `json:"pinsUsed"`
	ProductsRanked int             `json:"productsRanked"`
	Model          string          `json:"model"`
	RankedProducts []RankedProduct `json:"rankedProducts"`
}
