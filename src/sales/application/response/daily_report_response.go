package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReportResponse es el reporte agregado de un día de ventas
type DailyReportResponse struct {
	Date           string          `json:"date"`
	SalesCount     int             `json:"sales_count"`
	CancelledCount int             `json:"cancelled_count"`
	GrossTotal     decimal.Decimal `json:"gross_total"`
	TotalDiscounts decimal.Decimal `json:"total_discounts"`
	NetTotal       decimal.Decimal `json:"net_total"`
	FirstSaleAt    *time.Time      `json:"first_sale_at,omitempty"`
	LastSaleAt     *time.Time      `json:"last_sale_at,omitempty"`
}
