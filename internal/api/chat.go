package api

import "time"

// swagger:model api.PostMessageRequest
type PostMessageRequest struct {
	Message string `json:"message" validate:"required" example:"Hello!"`
}

// swagger:model api.ChatMessageResponse
type ChatMessageResponse struct {
	User      string    `json:"user" example:"alice"`
	Message   string    `json:"message" example:"Hello!"`
	Timestamp time.Time `json:"timestamp" example:"2025-05-01T15:04:05Z"`
}
