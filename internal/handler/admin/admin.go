package admin

import (
	"context"
	"net/http"

	"sitecms/internal/api"
	"sitecms/internal/handler"
	"sitecms/internal/model"

	"github.com/labstack/echo/v4"
)

// AdminService 管理員帳號管理
type AdminService interface {
	ListUsers(ctx context.Context, actingUserID int) ([]model.User, error)
	CreateAdmin(ctx context.Context, username, password, pin string) (*model.User, error)
	DeleteAdmin(ctx context.Context, username, pin string) error
}

// ListUsersHandler 列出所有使用者（僅管理員）
// @Summary     列出使用者
// @Tags        admin
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/users [get]
func ListUsersHandler(svc AdminService) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := handler.ActingUserID(c)
		if err != nil {
			return err
		}

		users, err := svc.ListUsers(c.Request().Context(), userID)
		if err != nil {
			return handler.WriteError(c, err)
		}
		resp := make([]api.UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, api.UserResponse{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// CreateAdminHandler 以 PIN 建立管理員
// @Summary     建立管理員
// @Description PIN 是共用的靜態值，只是低保證等級的閘門
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateAdminRequest true "管理員帳密與 PIN"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/create [post]
func CreateAdminHandler(svc AdminService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateAdminRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return err
		}

		if _, err := svc.CreateAdmin(c.Request().Context(), req.Username, req.Password, req.PIN); err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Admin user created"})
	}
}

// DeleteAdminHandler 以 PIN 刪除管理員
// @Summary     刪除管理員
// @Description 只會刪除 is_admin 為 true 的使用者；其聊天訊息保留並顯示為 [deleted]
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       body body     api.DeleteAdminRequest true "管理員名稱與 PIN"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/delete [post]
func DeleteAdminHandler(svc AdminService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.DeleteAdminRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return err
		}

		if err := svc.DeleteAdmin(c.Request().Context(), req.Username, req.PIN); err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Admin user deleted"})
	}
}
