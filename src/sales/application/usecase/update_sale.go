package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/request"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/response"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/entity"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/port"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/validation"
)

// UpdateSaleUseCase caso de uso para actualizar una venta completa.
// La lista de items entrante reemplaza la colección vía merge por id.
type UpdateSaleUseCase struct {
	saleRepo port.SaleRepository
	logger   *zap.Logger
}

// NewUpdateSaleUseCase crea una nueva instancia del caso de uso
func NewUpdateSaleUseCase(saleRepo port.SaleRepository, logger *zap.Logger) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{saleRepo: saleRepo, logger: logger}
}

// Execute carga la venta, aplica los campos y el merge de items, valida el
// aggregate resultante y persiste el reemplazo completo
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, id uuid.UUID, req *request.UpdateSaleRequest) (*response.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sale.SaleNumber = req.SaleNumber
	if req.SaleDate != nil {
		sale.SaleDate = *req.SaleDate
	}
	sale.Customer = entity.Customer(req.Customer)
	sale.Branch = entity.Branch(req.Branch)

	patches := make([]entity.ItemPatch, 0, len(req.Items))
	for _, r := range req.Items {
		patch := entity.ItemPatch{
			Product:     entity.Product(r.Product),
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			IsCancelled: r.IsCancelled,
		}
		if r.ID != "" {
			itemID, err := uuid.Parse(r.ID)
			if err != nil {
				return nil, validation.NewError([]validation.FieldError{
					{Field: "items", Message: fmt.Sprintf("invalid item id %q", r.ID)},
				})
			}
			patch.ID = itemID
		}
		patches = append(patches, patch)
	}

	if err := sale.MergeItems(patches); err != nil {
		return nil, err
	}

	if result := validation.ValidateSale(sale); !result.IsValid {
		return nil, validation.NewError(result.Errors)
	}

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		uc.logger.Error("failed to update sale",
			zap.String("sale_id", sale.ID.String()), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("sale updated",
		zap.String("sale_id", sale.ID.String()),
		zap.Int("items", sale.TotalItems()))

	return response.NewSaleResponse(sale), nil
}
