package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/request"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/validation"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/infrastructure/persistence"
)

func seedSales(t *testing.T, repo *persistence.SaleMemoryRepository, count int) {
	t.Helper()
	create := NewCreateSaleUseCase(repo, &capturingPublisher{}, zaptest.NewLogger(t))
	for i := 1; i <= count; i++ {
		req := validCreateRequest()
		req.SaleNumber = fmt.Sprintf("SALE-%03d", i)
		if i%2 == 0 {
			req.Branch = "north"
		}
		_, err := create.Execute(context.Background(), req)
		require.NoError(t, err)
	}
}

func TestListSales_Pagination(t *testing.T) {
	repo := persistence.NewSaleMemoryRepository()
	seedSales(t, repo, 10)
	uc := NewListSalesUseCase(repo)

	resp, err := uc.Execute(context.Background(), &request.ListSalesQuery{
		Page:     2,
		PageSize: 3,
		SortBy:   "sale_number",
	})
	require.NoError(t, err)

	assert.Len(t, resp.Items, 3)
	assert.Equal(t, 10, resp.TotalCount)
	assert.Equal(t, 4, resp.TotalPages)
	assert.Equal(t, "SALE-004", resp.Items[0].SaleNumber)
}

func TestListSales_FilterByBranch(t *testing.T) {
	repo := persistence.NewSaleMemoryRepository()
	seedSales(t, repo, 6)
	uc := NewListSalesUseCase(repo)

	resp, err := uc.Execute(context.Background(), &request.ListSalesQuery{Branch: "north"})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalCount)
	for _, sale := range resp.Items {
		assert.Equal(t, "north", sale.Branch)
	}
}

func TestListSales_InvalidEnumFilters(t *testing.T) {
	repo := persistence.NewSaleMemoryRepository()
	uc := NewListSalesUseCase(repo)

	_, err := uc.Execute(context.Background(), &request.ListSalesQuery{
		Branch:   "moon-base",
		Customer: "alien",
	})

	var validationErr *validation.Error
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 2)
}

func TestListSales_InvalidDates(t *testing.T) {
	repo := persistence.NewSaleMemoryRepository()
	uc := NewListSalesUseCase(repo)

	_, err := uc.Execute(context.Background(), &request.ListSalesQuery{
		StartDate: "08/01/2026",
	})

	var validationErr *validation.Error
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "startDate", validationErr.Errors[0].Field)
}

func TestListSales_UnknownSortByFallsBack(t *testing.T) {
	repo := persistence.NewSaleMemoryRepository()
	seedSales(t, repo, 3)
	uc := NewListSalesUseCase(repo)

	resp, err := uc.Execute(context.Background(), &request.ListSalesQuery{SortBy: "color"})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalCount)
}

func TestListSales_UnpagedReturnsSinglePage(t *testing.T) {
	repo := persistence.NewSaleMemoryRepository()
	seedSales(t, repo, 4)
	uc := NewListSalesUseCase(repo)

	resp, err := uc.Execute(context.Background(), &request.ListSalesQuery{})
	require.NoError(t, err)

	assert.Len(t, resp.Items, 4)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestListSales_FilterByCancelled(t *testing.T) {
	repo := persistence.NewSaleMemoryRepository()
	seedSales(t, repo, 4)

	// Cancelar una de las ventas
	list := NewListSalesUseCase(repo)
	all, err := list.Execute(context.Background(), &request.ListSalesQuery{SortBy: "sale_number"})
	require.NoError(t, err)
	cancel := NewCancelSaleUseCase(repo, &capturingPublisher{}, zaptest.NewLogger(t))
	_, err = cancel.Execute(context.Background(), all.Items[0].ID)
	require.NoError(t, err)

	cancelled := true
	resp, err := list.Execute(context.Background(), &request.ListSalesQuery{IsCancelled: &cancelled})
	require.NoError(t, err)

	require.Equal(t, 1, resp.TotalCount)
	assert.True(t, resp.Items[0].IsCancelled)
	assert.True(t, resp.Items[0].TotalAmount.Equal(decimal.Zero))
}
