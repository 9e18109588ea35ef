package domain

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type Recommendation struct {
	Query string `json:"query"`
	Text  string `json:"text"`
}

type LoginResponse struct {
	Username  string `json:"username"`
	AuthToken string `json:"authToken"`
	ExpiresAt int64  `json:"expiresAt"`
}
