package handler

import (
	"context"
	"errors"
	"net/http"

	"tienda-api/internal/api"
	"tienda-api/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	msgConflict = "email already registered"
	msgNoFields = "no fields to update"
	msgInternal = "internal server error"
)

// QueryContext 與 client 斷線脫鉤，已送出的查詢會跑完
func QueryContext(c echo.Context) context.Context {
	return context.WithoutCancel(c.Request().Context())
}

// Error 把 store 錯誤轉成狀態碼；未知錯誤只回通用訊息，細節寫進 log
func Error(c echo.Context, err error, notFound string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: notFound})
	case errors.Is(err, store.ErrConflict):
		return c.JSON(http.StatusConflict, api.ErrorResponse{Error: msgConflict})
	case errors.Is(err, store.ErrNoFields):
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgNoFields})
	default:
		log.Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Msg("request failed")
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: msgInternal})
	}
}
