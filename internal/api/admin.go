package api

// PIN 不設 required：缺少 PIN 視為 PIN 錯誤 (403)
// swagger:model api.CreateAdminRequest
type CreateAdminRequest struct {
	Username string `json:"username" validate:"required,max=100" example:"root"`
	Password string `json:"password" validate:"required,max=72" example:"Secret123!"`
	PIN      string `json:"pin" example:"2312"`
}

// swagger:model api.DeleteAdminRequest
type DeleteAdminRequest struct {
	Username string `json:"username" validate:"required" example:"root"`
	PIN      string `json:"pin" example:"2312"`
}

// swagger:model api.UserResponse
type UserResponse struct {
	ID       int    `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
	IsAdmin  bool   `json:"is_admin" example:"false"`
}
