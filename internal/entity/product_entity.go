package entity

type Product struct {
	Id         string   `json:"id"`
	Name       string   `json:"name"`
	Brand      string   `json:"brand"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Price      float64  `json:"price"`
	ProductUrl string   `json:"productUrl"`
	ImageUrl   string   `json:"imageUrl"`
}
