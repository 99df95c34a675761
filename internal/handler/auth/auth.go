package auth

import (
	"context"
	"net/http"

	"sitecms/internal/api"
	"sitecms/internal/handler"
	"sitecms/internal/model"
	"sitecms/internal/service"

	"github.com/labstack/echo/v4"
)

// AccountService 註冊與登入
type AccountService interface {
	Signup(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*service.LoginResult, error)
}

// SignupHandler 建立一般使用者
// @Summary     註冊使用者
// @Description 建立 is_admin 為 false 的新帳號，密碼以 bcrypt 儲存
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.CredentialsRequest true "帳號密碼"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /signup [post]
func SignupHandler(svc AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CredentialsRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return err
		}

		if _, err := svc.Signup(c.Request().Context(), req.Username, req.Password); err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "User created successfully"})
	}
}

// LoginHandler 使用 Username/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 驗證帳密後回傳一小時有效的存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.CredentialsRequest true "帳號密碼"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(svc AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CredentialsRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return err
		}

		res, err := svc.Login(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			return handler.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.LoginResponse{
			Message:     "Login successful",
			AccessToken: res.AccessToken,
			UserID:      res.User.ID,
			IsAdmin:     res.User.IsAdmin,
		})
	}
}
