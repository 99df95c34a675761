package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"sitecms/internal/api"
	"sitecms/internal/service"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

// ErrorHandler 取代 echo 預設的錯誤處理，所有錯誤都輸出 {"error": "..."}
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := internalErrorMessage

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else if he.Message != nil {
			message = fmt.Sprint(he.Message)
		}
	}

	if code >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
		message = internalErrorMessage
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, api.ErrorResponse{Error: message})
	}
	if writeErr != nil {
		slog.Error("write error response", "error", writeErr)
	}
}

// StatusFor 依領域錯誤種類決定 HTTP 狀態碼
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError 把 service 回傳的錯誤寫成 JSON；未分類的錯誤只記錄不外洩
func WriteError(c echo.Context, err error) error {
	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		slog.Error("unhandled service error",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		return c.JSON(code, api.ErrorResponse{Error: internalErrorMessage})
	}
	return c.JSON(code, api.ErrorResponse{Error: err.Error()})
}
