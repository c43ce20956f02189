package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/request"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/usecase"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/entity"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/validation"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/shared/infrastructure/metrics"
)

// SaleController maneja las peticiones HTTP para ventas
type SaleController struct {
	createSaleUC     *usecase.CreateSaleUseCase
	getSaleUC        *usecase.GetSaleUseCase
	listSalesUC      *usecase.ListSalesUseCase
	updateSaleUC     *usecase.UpdateSaleUseCase
	cancelSaleUC     *usecase.CancelSaleUseCase
	deleteSaleUC     *usecase.DeleteSaleUseCase
	createSaleItemUC *usecase.CreateSaleItemUseCase
	getSaleItemUC    *usecase.GetSaleItemUseCase
	updateSaleItemUC *usecase.UpdateSaleItemUseCase
	deleteSaleItemUC *usecase.DeleteSaleItemUseCase
	logger           *zap.Logger
}

// NewSaleController crea una nueva instancia del controlador
func NewSaleController(
	createSaleUC *usecase.CreateSaleUseCase,
	getSaleUC *usecase.GetSaleUseCase,
	listSalesUC *usecase.ListSalesUseCase,
	updateSaleUC *usecase.UpdateSaleUseCase,
	cancelSaleUC *usecase.CancelSaleUseCase,
	deleteSaleUC *usecase.DeleteSaleUseCase,
	createSaleItemUC *usecase.CreateSaleItemUseCase,
	getSaleItemUC *usecase.GetSaleItemUseCase,
	updateSaleItemUC *usecase.UpdateSaleItemUseCase,
	deleteSaleItemUC *usecase.DeleteSaleItemUseCase,
	logger *zap.Logger,
) *SaleController {
	return &SaleController{
		createSaleUC:     createSaleUC,
		getSaleUC:        getSaleUC,
		listSalesUC:      listSalesUC,
		updateSaleUC:     updateSaleUC,
		cancelSaleUC:     cancelSaleUC,
		deleteSaleUC:     deleteSaleUC,
		createSaleItemUC: createSaleItemUC,
		getSaleItemUC:    getSaleItemUC,
		updateSaleItemUC: updateSaleItemUC,
		deleteSaleItemUC: deleteSaleItemUC,
		logger:           logger,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.GET("", c.ListSales)
		sales.POST("", c.CreateSale)
		sales.GET("/:sale_id", c.GetSale)
		sales.PUT("/:sale_id", c.UpdateSale)
		sales.DELETE("/:sale_id", c.DeleteSale)
		sales.POST("/:sale_id/cancel", c.CancelSale)
		sales.POST("/:sale_id/items", c.CreateSaleItem)

		sales.GET("/items/:item_id", c.GetSaleItem)
		sales.PUT("/items/:item_id", c.UpdateSaleItem)
		sales.DELETE("/items/:item_id", c.DeleteSaleItem)
	}
}

// respondError traduce los errores de dominio a códigos HTTP
func (c *SaleController) respondError(ctx *gin.Context, err error) {
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"errors": validationErr.Errors,
		})
		return
	}

	switch {
	case errors.Is(err, entity.ErrSaleNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
	case errors.Is(err, entity.ErrSaleItemNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Sale item not found"})
	case errors.Is(err, entity.ErrSaleNumberExists):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Sale number already exists"})
	case errors.Is(err, entity.ErrQuantityAboveLimit),
		errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrInvalidPrice),
		errors.Is(err, entity.ErrSaleMustHaveItems):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.logger.Error("unhandled error", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}

// CreateSale maneja la creación de una venta
func (c *SaleController) CreateSale(ctx *gin.Context) {
	var req request.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.createSaleUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	metrics.SalesCreated.Inc()
	ctx.JSON(http.StatusCreated, resp)
}

// GetSale maneja la consulta de una venta por id
func (c *SaleController) GetSale(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "sale_id")
	if !ok {
		return
	}

	resp, err := c.getSaleUC.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListSales maneja el listado con filtros, orden y paginación
func (c *SaleController) ListSales(ctx *gin.Context) {
	var query request.ListSalesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.listSalesUC.Execute(ctx.Request.Context(), &query)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UpdateSale maneja la actualización completa de una venta
func (c *SaleController) UpdateSale(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "sale_id")
	if !ok {
		return
	}

	var req request.UpdateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.updateSaleUC.Execute(ctx.Request.Context(), id, &req)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// CancelSale maneja la cancelación de una venta
func (c *SaleController) CancelSale(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "sale_id")
	if !ok {
		return
	}

	resp, err := c.cancelSaleUC.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	metrics.SalesCancelled.Inc()
	ctx.JSON(http.StatusOK, resp)
}

// DeleteSale maneja la eliminación de una venta
func (c *SaleController) DeleteSale(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "sale_id")
	if !ok {
		return
	}

	if err := c.deleteSaleUC.Execute(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err)
		return
	}

	metrics.SalesDeleted.Inc()
	ctx.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}

// CreateSaleItem maneja el alta de un item sobre una venta existente
func (c *SaleController) CreateSaleItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "sale_id")
	if !ok {
		return
	}

	var req request.CreateSaleItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.createSaleItemUC.Execute(ctx.Request.Context(), id, &req)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// GetSaleItem maneja la consulta de un item por id
func (c *SaleController) GetSaleItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "item_id")
	if !ok {
		return
	}

	resp, err := c.getSaleItemUC.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UpdateSaleItem maneja la actualización directa de un item
func (c *SaleController) UpdateSaleItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "item_id")
	if !ok {
		return
	}

	var req request.UpdateSaleItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.updateSaleItemUC.Execute(ctx.Request.Context(), id, &req)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// DeleteSaleItem maneja la eliminación de un item
func (c *SaleController) DeleteSaleItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "item_id")
	if !ok {
		return
	}

	if err := c.deleteSaleItemUC.Execute(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Sale item deleted successfully"})
}
