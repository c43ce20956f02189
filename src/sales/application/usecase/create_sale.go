package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/request"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/response"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/entity"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/port"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/validation"
)

// CreateSaleUseCase caso de uso para registrar una venta nueva
type CreateSaleUseCase struct {
	saleRepo  port.SaleRepository
	publisher port.EventPublisher
	logger    *zap.Logger
}

// NewCreateSaleUseCase crea una nueva instancia del caso de uso
func NewCreateSaleUseCase(saleRepo port.SaleRepository, publisher port.EventPublisher, logger *zap.Logger) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:  saleRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute valida la petición, verifica unicidad del número de venta,
// persiste el aggregate completo y publica SaleCreated
func (uc *CreateSaleUseCase) Execute(ctx context.Context, req *request.CreateSaleRequest) (*response.SaleResponse, error) {
	items, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	var saleDate time.Time
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}

	sale, err := entity.NewSale(req.SaleNumber, saleDate, entity.Customer(req.Customer), entity.Branch(req.Branch), items)
	if err != nil {
		return nil, err
	}

	if result := validation.ValidateSale(sale); !result.IsValid {
		return nil, validation.NewError(result.Errors)
	}

	// Unicidad de sale_number: se verifica antes de crear y además la capa
	// de persistencia reporta el conflicto si dos creaciones compiten
	if _, err := uc.saleRepo.GetBySaleNumber(ctx, sale.SaleNumber); err == nil {
		return nil, entity.ErrSaleNumberExists
	} else if !errors.Is(err, entity.ErrSaleNotFound) {
		return nil, fmt.Errorf("checking sale number uniqueness: %w", err)
	}

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		uc.logger.Error("failed to create sale",
			zap.String("sale_number", sale.SaleNumber), zap.Error(err))
		return nil, err
	}

	uc.publisher.Publish(ctx, port.EventSaleCreated, port.SaleEvent{
		SaleID:       sale.ID,
		TimestampUTC: time.Now().UTC(),
	})

	uc.logger.Info("sale created",
		zap.String("sale_id", sale.ID.String()),
		zap.String("sale_number", sale.SaleNumber),
		zap.Int("items", sale.TotalItems()))

	return response.NewSaleResponse(sale), nil
}

// buildItems construye los items del aggregate desde la petición. El saleID
// definitivo lo asigna NewSale.
func buildItems(reqs []request.SaleItemRequest) ([]entity.SaleItem, error) {
	items := make([]entity.SaleItem, 0, len(reqs))
	for _, r := range reqs {
		item, err := entity.NewSaleItem(uuid.Nil, entity.Product(r.Product), r.Quantity, r.UnitPrice, r.IsCancelled)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}
