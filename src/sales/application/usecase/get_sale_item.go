package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/response"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/port"
)

// GetSaleItemUseCase caso de uso para consultar un item por id
type GetSaleItemUseCase struct {
	saleRepo port.SaleRepository
}

// NewGetSaleItemUseCase crea una nueva instancia del caso de uso
func NewGetSaleItemUseCase(saleRepo port.SaleRepository) *GetSaleItemUseCase {
	return &GetSaleItemUseCase{saleRepo: saleRepo}
}

// Execute retorna el item de venta
func (uc *GetSaleItemUseCase) Execute(ctx context.Context, id uuid.UUID) (*response.SaleItemResponse, error) {
	item, err := uc.saleRepo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response.NewSaleItemResponse(item)
	return &resp, nil
}
