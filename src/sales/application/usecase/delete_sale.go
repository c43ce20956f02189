package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/entity"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/port"
)

// DeleteSaleUseCase caso de uso para eliminar una venta y sus items
type DeleteSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
	logger    *zap.Logger
}

// NewDeleteSaleUseCase crea una nueva instancia del caso de uso
func NewDeleteSaleUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher, logger *zap.Logger) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute elimina la venta (cascada a items) y publica SaleDeleted
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	deleted, err := uc.saleRepo.Delete(ctx, id)
	if err != nil {
		uc.logger.Error("failed to delete sale",
			zap.String("sale_id", id.String()), zap.Error(err))
		return err
	}
	if !deleted {
		return entity.ErrSaleNotFound
	}

	uc.publisher.Publish(ctx, port.EventSaleDeleted, port.SaleEvent{
		SaleID:       id,
		TimestampUTC: time.Now().UTC(),
	})

	uc.logger.Info("sale deleted", zap.String("sale_id", id.String()))
	return nil
}
