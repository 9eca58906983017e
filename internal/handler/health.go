// File: internal/handler/health.go
package handler

import (
	"net/http"

	"tienda-api/internal/api"
	"tienda-api/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// HealthHandler 服務存活檢查，不碰資料庫
// @Summary     Health Check
// @Description 回傳 API 狀態
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Router      / [get]
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.HealthResponse{OK: true, Msg: "API funcionando"})
	}
}

// PingHandler 檢查連線池能否連到資料庫
// @Summary     Readiness Check
// @Description 回傳 pong，並檢查資料庫連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(QueryContext(c)); err != nil {
			log.Error().Err(err).Msg("database unhealthy")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, api.HealthResponse{OK: true, Msg: "pong"})
	}
}
