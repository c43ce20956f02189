package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/response"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/port"
)

// CancelSaleUseCase caso de uso para cancelar una venta.
// La cancelación es de una sola vía y no toca los items almacenados.
type CancelSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
	logger    *zap.Logger
}

// NewCancelSaleUseCase crea una nueva instancia del caso de uso
func NewCancelSaleUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher, logger *zap.Logger) *CancelSaleUseCase {
	return &CancelSaleUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute marca la venta como cancelada, persiste y publica SaleCancelled
func (uc *CancelSaleUseCase) Execute(ctx context.Context, id uuid.UUID) (*response.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sale.Cancel()

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		uc.logger.Error("failed to cancel sale",
			zap.String("sale_id", sale.ID.String()), zap.Error(err))
		return nil, err
	}

	uc.publisher.Publish(ctx, port.EventSaleCancelled, port.SaleEvent{
		SaleID:       sale.ID,
		TimestampUTC: time.Now().UTC(),
	})

	uc.logger.Info("sale cancelled", zap.String("sale_id", sale.ID.String()))

	return response.NewSaleResponse(sale), nil
}
