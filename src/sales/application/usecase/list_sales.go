package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/request"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/response"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/entity"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/port"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/validation"
)

// Formatos aceptados para los filtros de fecha
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ListSalesUseCase caso de uso para listar ventas con filtros y paginación
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase crea una nueva instancia del caso de uso
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// Execute traduce la consulta a filtros del repositorio y retorna la página.
// Un sort_by desconocido cae al orden por defecto sin fallar la consulta.
func (uc *ListSalesUseCase) Execute(ctx context.Context, query *request.ListSalesQuery) (*response.ListSalesResponse, error) {
	filters, err := buildListFilters(query)
	if err != nil {
		return nil, err
	}

	page, err := uc.saleRepo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	items := make([]response.SaleResponse, 0, len(page.Items))
	for _, sale := range page.Items {
		items = append(items, *response.NewSaleResponse(sale))
	}

	totalPages := 1
	if page.PageSize > 0 {
		totalPages = int(math.Ceil(float64(page.TotalCount) / float64(page.PageSize)))
	}

	return &response.ListSalesResponse{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: totalPages,
	}, nil
}

// buildListFilters valida y convierte los parámetros de la consulta
func buildListFilters(query *request.ListSalesQuery) (port.ListFilters, error) {
	filters := port.ListFilters{
		SaleNumber:  query.SaleNumber,
		IsCancelled: query.IsCancelled,
		Page:        query.Page,
		PageSize:    query.PageSize,
		IsDesc:      query.IsDesc,
	}

	var errs []validation.FieldError

	if query.Branch != "" {
		branch := entity.Branch(query.Branch)
		if !branch.IsValid() {
			errs = append(errs, validation.FieldError{Field: "branch", Message: "Branch is invalid"})
		}
		filters.Branch = &branch
	}

	if query.Customer != "" {
		customer := entity.Customer(query.Customer)
		if !customer.IsValid() {
			errs = append(errs, validation.FieldError{Field: "customer", Message: "Customer is invalid"})
		}
		filters.Customer = &customer
	}

	if query.StartDate != "" {
		t, err := parseDate(query.StartDate)
		if err != nil {
			errs = append(errs, validation.FieldError{Field: "startDate", Message: err.Error()})
		} else {
			filters.StartDate = &t
		}
	}

	if query.EndDate != "" {
		t, err := parseDate(query.EndDate)
		if err != nil {
			errs = append(errs, validation.FieldError{Field: "endDate", Message: err.Error()})
		} else {
			filters.EndDate = &t
		}
	}

	if len(errs) > 0 {
		return port.ListFilters{}, validation.NewError(errs)
	}

	// Campo de orden desconocido: orden por defecto, nunca un error
	if port.SortableField(query.SortBy) {
		filters.SortBy = query.SortBy
	}

	return filters, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", value)
}
