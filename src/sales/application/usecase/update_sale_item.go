package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/request"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/response"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/entity"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/port"
)

// UpdateSaleItemUseCase caso de uso para la actualización directa de un item.
// Toda mutación pasa por SaleItem.Update, que recalcula el descuento.
type UpdateSaleItemUseCase struct {
	saleRepo port.SaleRepository
	logger   *zap.Logger
}

// NewUpdateSaleItemUseCase crea una nueva instancia del caso de uso
func NewUpdateSaleItemUseCase(saleRepo port.SaleRepository, logger *zap.Logger) *UpdateSaleItemUseCase {
	return &UpdateSaleItemUseCase{saleRepo: saleRepo, logger: logger}
}

// Execute sobreescribe los campos mutables del item y persiste
func (uc *UpdateSaleItemUseCase) Execute(ctx context.Context, id uuid.UUID, req *request.UpdateSaleItemRequest) (*response.SaleItemResponse, error) {
	item, err := uc.saleRepo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.Update(entity.Product(req.Product), req.Quantity, req.UnitPrice, req.IsCancelled); err != nil {
		return nil, err
	}

	if err := uc.saleRepo.UpdateItem(ctx, item); err != nil {
		uc.logger.Error("failed to update sale item",
			zap.String("item_id", id.String()), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("sale item updated", zap.String("item_id", id.String()))

	resp := response.NewSaleItemResponse(item)
	return &resp, nil
}
