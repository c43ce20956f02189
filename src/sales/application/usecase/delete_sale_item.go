package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/entity"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/port"
)

// DeleteSaleItemUseCase caso de uso para eliminar un item puntual
type DeleteSaleItemUseCase struct {
	saleRepo port.SaleRepository
	logger   *zap.Logger
}

// NewDeleteSaleItemUseCase crea una nueva instancia del caso de uso
func NewDeleteSaleItemUseCase(saleRepo port.SaleRepository, logger *zap.Logger) *DeleteSaleItemUseCase {
	return &DeleteSaleItemUseCase{saleRepo: saleRepo, logger: logger}
}

// Execute elimina el item; ErrSaleItemNotFound si no existe
func (uc *DeleteSaleItemUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	deleted, err := uc.saleRepo.DeleteItem(ctx, id)
	if err != nil {
		uc.logger.Error("failed to delete sale item",
			zap.String("item_id", id.String()), zap.Error(err))
		return err
	}
	if !deleted {
		return entity.ErrSaleItemNotFound
	}

	uc.logger.Info("sale item deleted", zap.String("item_id", id.String()))
	return nil
}
