package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest es un item dentro de una petición de creación o
// actualización de venta. ID vacío identifica un item nuevo.
type SaleItemRequest struct {
	ID          string          `json:"id"`
	Product     string          `json:"product" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	IsCancelled bool            `json:"is_cancelled"`
}

// CreateSaleRequest es la petición para registrar una venta nueva.
// SaleDate en nil usa la hora actual.
type CreateSaleRequest struct {
	SaleNumber string            `json:"sale_number" binding:"required"`
	SaleDate   *time.Time        `json:"sale_date"`
	Customer   string            `json:"customer" binding:"required"`
	Branch     string            `json:"branch" binding:"required"`
	Items      []SaleItemRequest `json:"items"`
}

// UpdateSaleRequest es la petición de actualización completa de una venta.
// La lista de items reemplaza la colección existente vía merge por id.
type UpdateSaleRequest struct {
	SaleNumber string            `json:"sale_number" binding:"required"`
	SaleDate   *time.Time        `json:"sale_date"`
	Customer   string            `json:"customer" binding:"required"`
	Branch     string            `json:"branch" binding:"required"`
	Items      []SaleItemRequest `json:"items"`
}

// CreateSaleItemRequest es la petición para agregar un item a una venta
// existente
type CreateSaleItemRequest struct {
	Product     string          `json:"product" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	IsCancelled bool            `json:"is_cancelled"`
}

// UpdateSaleItemRequest es la petición de actualización directa de un item
type UpdateSaleItemRequest struct {
	Product     string          `json:"product" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	IsCancelled bool            `json:"is_cancelled"`
}

// ListSalesQuery son los parámetros del listado de ventas. Las fechas vienen
// como string y se parsean en el caso de uso (YYYY-MM-DD o RFC 3339).
type ListSalesQuery struct {
	SaleNumber  string `form:"sale_number"`
	IsCancelled *bool  `form:"is_cancelled"`
	Branch      string `form:"branch"`
	Customer    string `form:"customer"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	Page        int    `form:"page"`
	PageSize    int    `form:"page_size"`
	SortBy      string `form:"sort_by"`
	IsDesc      bool   `form:"is_desc"`
}
