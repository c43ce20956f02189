package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/response"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/port"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/validation"
)

// DailyReportUseCase caso de uso para el reporte consolidado de un día
type DailyReportUseCase struct {
	saleRepo port.SaleRepository
}

// NewDailyReportUseCase crea una nueva instancia del caso de uso
func NewDailyReportUseCase(saleRepo port.SaleRepository) *DailyReportUseCase {
	return &DailyReportUseCase{saleRepo: saleRepo}
}

// Execute agrega las ventas cuyo sale_date cae dentro del día dado (UTC)
func (uc *DailyReportUseCase) Execute(ctx context.Context, date string) (*response.DailyReportResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return nil, validation.NewError([]validation.FieldError{
			{Field: "date", Message: "Date must use the YYYY-MM-DD format."},
		})
	}

	start := day
	end := day.Add(24*time.Hour - time.Nanosecond)

	page, err := uc.saleRepo.List(ctx, port.ListFilters{
		StartDate: &start,
		EndDate:   &end,
		SortBy:    "sale_date",
	})
	if err != nil {
		return nil, err
	}

	report := &response.DailyReportResponse{
		Date:           date,
		GrossTotal:     decimal.Zero,
		TotalDiscounts: decimal.Zero,
		NetTotal:       decimal.Zero,
	}

	for _, sale := range page.Items {
		report.SalesCount++
		if sale.IsCancelled {
			report.CancelledCount++
		} else {
			for _, item := range sale.Items {
				if item.IsCancelled {
					continue
				}
				report.GrossTotal = report.GrossTotal.Add(item.Subtotal())
				report.TotalDiscounts = report.TotalDiscounts.Add(item.Discount)
			}
			report.NetTotal = report.NetTotal.Add(sale.TotalAmount())
		}

		saleDate := sale.SaleDate
		if report.FirstSaleAt == nil || saleDate.Before(*report.FirstSaleAt) {
			report.FirstSaleAt = &saleDate
		}
		if report.LastSaleAt == nil || saleDate.After(*report.LastSaleAt) {
			report.LastSaleAt = &saleDate
		}
	}

	return report, nil
}
