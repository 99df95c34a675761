package api

// swagger:model api.CredentialsRequest
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,max=100" example:"alice"`
	Password string `json:"password" validate:"required,max=72" example:"Secret123!"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	Message     string `json:"message" example:"Login successful"`
	AccessToken string `json:"access_token" example:"eyJhbGciOi..."`
	UserID      int    `json:"user_id" example:"1"`
	IsAdmin     bool   `json:"is_admin" example:"false"`
}
