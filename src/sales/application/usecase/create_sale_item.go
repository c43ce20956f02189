package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/request"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/response"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/entity"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/port"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/validation"
)

// CreateSaleItemUseCase caso de uso para agregar un item a una venta existente
type CreateSaleItemUseCase struct {
	saleRepo port.SaleRepository
	logger   *zap.Logger
}

// NewCreateSaleItemUseCase crea una nueva instancia del caso de uso
func NewCreateSaleItemUseCase(saleRepo port.SaleRepository, logger *zap.Logger) *CreateSaleItemUseCase {
	return &CreateSaleItemUseCase{saleRepo: saleRepo, logger: logger}
}

// Execute carga la venta, agrega el item, valida el aggregate resultante y
// persiste el reemplazo completo
func (uc *CreateSaleItemUseCase) Execute(ctx context.Context, saleID uuid.UUID, req *request.CreateSaleItemRequest) (*response.SaleItemResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	item, err := sale.AddItem(entity.Product(req.Product), req.Quantity, req.UnitPrice, req.IsCancelled)
	if err != nil {
		return nil, err
	}

	if result := validation.ValidateSale(sale); !result.IsValid {
		return nil, validation.NewError(result.Errors)
	}

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		uc.logger.Error("failed to add sale item",
			zap.String("sale_id", sale.ID.String()), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("sale item added",
		zap.String("sale_id", sale.ID.String()),
		zap.String("item_id", item.ID.String()))

	resp := response.NewSaleItemResponse(item)
	return &resp, nil
}
