package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/usecase"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/validation"
)

// ReportController maneja las peticiones HTTP para reportes
type ReportController struct {
	dailyReportUC *usecase.DailyReportUseCase
	logger        *zap.Logger
}

// NewReportController crea una nueva instancia del controlador
func NewReportController(dailyReportUC *usecase.DailyReportUseCase, logger *zap.Logger) *ReportController {
	return &ReportController{
		dailyReportUC: dailyReportUC,
		logger:        logger,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/daily", c.DailyReport)
	}
}

// DailyReport maneja el reporte diario de ventas
func (c *ReportController) DailyReport(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required (format: YYYY-MM-DD)",
		})
		return
	}

	resp, err := c.dailyReportUC.Execute(ctx.Request.Context(), date)
	if err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error":  "Validation failed",
				"errors": validationErr.Errors,
			})
			return
		}

		c.logger.Error("failed to generate daily report",
			zap.String("date", date), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error generating daily report",
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
