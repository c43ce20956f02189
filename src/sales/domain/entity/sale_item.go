package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Límites de cantidad por item. Más de MaxItemQuantity unidades del mismo
// producto no se pueden vender en una sola línea.
const (
	MinItemQuantity = 1
	MaxItemQuantity = 20
)

// Tiers de descuento por cantidad:
//   - 10 a 20 unidades: 20%
//   - 4 a 9 unidades:   10%
//   - 1 a 3 unidades:   sin descuento
var (
	discountTierHigh = decimal.NewFromFloat(0.20)
	discountTierLow  = decimal.NewFromFloat(0.10)
)

// SaleItem representa un item dentro de una venta (Entity dentro del Aggregate).
// El descuento se calcula al construir y queda congelado; el total siempre es
// derivado y nunca se almacena.
type SaleItem struct {
	ID          uuid.UUID       `json:"id"`
	SaleID      uuid.UUID       `json:"sale_id"`
	Product     Product         `json:"product"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	IsCancelled bool            `json:"is_cancelled"`
}

// NewSaleItem crea un nuevo item de venta calculando el descuento por tiers.
// Cantidades mayores a MaxItemQuantity son un error de construcción, no una
// falla blanda de validación.
func NewSaleItem(saleID uuid.UUID, product Product, quantity int, unitPrice decimal.Decimal, isCancelled bool) (*SaleItem, error) {
	if quantity < MinItemQuantity {
		return nil, ErrInvalidQuantity
	}
	if quantity > MaxItemQuantity {
		return nil, ErrQuantityAboveLimit
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	return &SaleItem{
		ID:          uuid.New(),
		SaleID:      saleID,
		Product:     product,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Discount:    calculateDiscount(quantity, unitPrice),
		IsCancelled: isCancelled,
	}, nil
}

// calculateDiscount aplica la regla de descuento por cantidad sobre el subtotal
func calculateDiscount(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	switch {
	case quantity >= 10 && quantity <= MaxItemQuantity:
		return subtotal.Mul(discountTierHigh)
	case quantity >= 4:
		return subtotal.Mul(discountTierLow)
	default:
		return decimal.Zero
	}
}

// Update reemplaza los campos mutables del item y recalcula el descuento.
// Es el único camino para modificar un item existente.
func (i *SaleItem) Update(product Product, quantity int, unitPrice decimal.Decimal, isCancelled bool) error {
	if quantity < MinItemQuantity {
		return ErrInvalidQuantity
	}
	if quantity > MaxItemQuantity {
		return ErrQuantityAboveLimit
	}
	if unitPrice.LessThan(decimal.Zero) {
		return ErrInvalidPrice
	}

	i.Product = product
	i.Quantity = quantity
	i.UnitPrice = unitPrice
	i.Discount = calculateDiscount(quantity, unitPrice)
	i.IsCancelled = isCancelled
	return nil
}

// Subtotal retorna cantidad × precio unitario, sin descuento
func (i *SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TotalAmount retorna el total del item después del descuento.
// Un item cancelado no aporta al total.
func (i *SaleItem) TotalAmount() decimal.Decimal {
	if i.IsCancelled {
		return decimal.Zero
	}
	return i.Subtotal().Sub(i.Discount)
}
