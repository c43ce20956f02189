package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/entity"
)

// SaleItemResponse es la representación de salida de un item
type SaleItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	SaleID      uuid.UUID       `json:"sale_id"`
	Product     string          `json:"product"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	IsCancelled bool            `json:"is_cancelled"`
}

// SaleResponse es la representación de salida de una venta completa
type SaleResponse struct {
	ID          uuid.UUID          `json:"id"`
	SaleNumber  string             `json:"sale_number"`
	SaleDate    time.Time          `json:"sale_date"`
	Customer    string             `json:"customer"`
	Branch      string             `json:"branch"`
	Items       []SaleItemResponse `json:"items"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	IsCancelled bool               `json:"is_cancelled"`
	CreatedAt   time.Time          `json:"created_at"`
}

// NewSaleItemResponse construye la respuesta de un item
func NewSaleItemResponse(item *entity.SaleItem) SaleItemResponse {
	return SaleItemResponse{
		ID:          item.ID,
		SaleID:      item.SaleID,
		Product:     string(item.Product),
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Discount:    item.Discount,
		TotalAmount: item.TotalAmount(),
		IsCancelled: item.IsCancelled,
	}
}

// NewSaleResponse construye la respuesta de una venta con sus items
func NewSaleResponse(sale *entity.Sale) *SaleResponse {
	items := make([]SaleItemResponse, 0, len(sale.Items))
	for i := range sale.Items {
		items = append(items, NewSaleItemResponse(&sale.Items[i]))
	}

	return &SaleResponse{
		ID:          sale.ID,
		SaleNumber:  sale.SaleNumber,
		SaleDate:    sale.SaleDate,
		Customer:    string(sale.Customer),
		Branch:      string(sale.Branch),
		Items:       items,
		TotalAmount: sale.TotalAmount(),
		IsCancelled: sale.IsCancelled,
		CreatedAt:   sale.CreatedAt,
	}
}
