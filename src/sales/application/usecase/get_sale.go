package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/response"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/port"
)

// GetSaleUseCase caso de uso para consultar una venta por id
type GetSaleUseCase struct {
	saleRepo port.SaleRepository
}

// NewGetSaleUseCase crea una nueva instancia del caso de uso
func NewGetSaleUseCase(saleRepo port.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{saleRepo: saleRepo}
}

// Execute retorna la venta con sus items
func (uc *GetSaleUseCase) Execute(ctx context.Context, id uuid.UUID) (*response.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return response.NewSaleResponse(sale), nil
}
