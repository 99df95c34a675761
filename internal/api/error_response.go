package api

// ErrorResponse 全域錯誤回應
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Error string `json:"error" example:"Page not found"`
}

// MessageResponse 只帶訊息的成功回應
// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Blog added successfully!"`
}
