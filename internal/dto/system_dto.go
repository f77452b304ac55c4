package dto

type IndexResponse struct {
	Name    string   `json:"name"`
	Message string   `json:"message"`
	Routes  []string `json:"routes"`
}

type HealthResponse struct {
	Ok              bool `json:"ok"`
	OauthConfigured bool `json:"oauthConfigured"`
}
