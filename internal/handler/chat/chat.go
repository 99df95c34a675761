package chat

import (
	"context"
	"net/http"

	"sitecms/internal/api"
	"sitecms/internal/handler"
	"sitecms/internal/model"

	"github.com/labstack/echo/v4"
)

// ChatService 聊天紀錄
type ChatService interface {
	ListMessages(ctx context.Context) ([]model.ChatEntry, error)
	PostMessage(ctx context.Context, text string, actingUserID int) (*model.Message, error)
}

// ListMessagesHandler 回傳完整聊天紀錄，舊的在前
// @Summary     取得聊天紀錄
// @Description 客戶端以輪詢取得；作者已刪除的訊息 user 為 [deleted]
// @Tags        chat
// @Produce     json
// @Success     200 {array}  api.ChatMessageResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /chat [get]
func ListMessagesHandler(svc ChatService) echo.HandlerFunc {
	return func(c echo.Context) error {
		entries, err := svc.ListMessages(c.Request().Context())
		if err != nil {
			return handler.WriteError(c, err)
		}
		resp := make([]api.ChatMessageResponse, 0, len(entries))
		for _, m := range entries {
			resp = append(resp, api.ChatMessageResponse{User: m.Username, Message: m.Message, Timestamp: m.Timestamp})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// PostMessageHandler 以目前使用者身分發送訊息
// @Summary     發送聊天訊息
// @Tags        chat
// @Accept      json
// @Produce     json
// @Param       body body     api.PostMessageRequest true "訊息"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /chat [post]
func PostMessageHandler(svc ChatService) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := handler.ActingUserID(c)
		if err != nil {
			return err
		}
		var req api.PostMessageRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return err
		}

		if _, err := svc.PostMessage(c.Request().Context(), req.Message, userID); err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Message posted"})
	}
}
