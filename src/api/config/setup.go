package config

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIConfig configuración del módulo API (health check)
type APIConfig struct {
	DB      *sql.DB
	Version string
}

// DefaultAPIConfig retorna la configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{Version: "1.0.0"}
}

// SetupAPIModule registra los health checks en la raíz y bajo /api/v1
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	handler := healthHandler(cfg)
	router.GET("/health", handler)
	v1.GET("/health", handler)
}

func healthHandler(cfg APIConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "not_configured"
		if cfg.DB != nil {
			if err := cfg.DB.PingContext(ctx.Request.Context()); err != nil {
				dbStatus = "down"
			} else {
				dbStatus = "up"
			}
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"version":  cfg.Version,
			"database": dbStatus,
		})
	}
}
