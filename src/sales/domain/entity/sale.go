package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale representa una venta (Aggregate Root). Es dueña exclusiva de su
// colección ordenada de items: ningún SaleItem existe sin su venta y toda
// modificación de items pasa por el aggregate.
type Sale struct {
	ID          uuid.UUID  `json:"id"`
	SaleNumber  string     `json:"sale_number"`
	SaleDate    time.Time  `json:"sale_date"`
	Customer    Customer   `json:"customer"`
	Branch      Branch     `json:"branch"`
	Items       []SaleItem `json:"items"`
	IsCancelled bool       `json:"is_cancelled"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewSale crea una nueva venta con sus items. Si saleDate viene en cero se
// usa la hora actual. Los items quedan asociados al id de la venta.
func NewSale(saleNumber string, saleDate time.Time, customer Customer, branch Branch, items []SaleItem) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrSaleMustHaveItems
	}

	if saleDate.IsZero() {
		saleDate = time.Now()
	}

	saleID := uuid.New()
	for i := range items {
		items[i].SaleID = saleID
	}

	return &Sale{
		ID:         saleID,
		SaleNumber: saleNumber,
		SaleDate:   saleDate,
		Customer:   customer,
		Branch:     branch,
		Items:      items,
		CreatedAt:  time.Now(),
	}, nil
}

// TotalAmount retorna el monto total de la venta. Una venta cancelada
// totaliza cero sin importar sus items.
func (s *Sale) TotalAmount() decimal.Decimal {
	if s.IsCancelled {
		return decimal.Zero
	}

	total := decimal.Zero
	for i := range s.Items {
		total = total.Add(s.Items[i].TotalAmount())
	}
	return total
}

// Cancel marca la venta como cancelada. La transición es de una sola vía:
// no existe operación para revertirla.
func (s *Sale) Cancel() {
	s.IsCancelled = true
}

// TotalItems retorna el número de items de la venta
func (s *Sale) TotalItems() int {
	return len(s.Items)
}

// AddItem agrega un item nuevo a la venta y retorna el item creado
func (s *Sale) AddItem(product Product, quantity int, unitPrice decimal.Decimal, isCancelled bool) (*SaleItem, error) {
	item, err := NewSaleItem(s.ID, product, quantity, unitPrice, isCancelled)
	if err != nil {
		return nil, err
	}
	s.Items = append(s.Items, *item)
	return &s.Items[len(s.Items)-1], nil
}

// ItemPatch describe el estado deseado de un item en un reemplazo completo
// de la colección. ID en uuid.Nil identifica un item nuevo.
type ItemPatch struct {
	ID          uuid.UUID
	Product     Product
	Quantity    int
	UnitPrice   decimal.Decimal
	IsCancelled bool
}

// MergeItems reconcilia la colección de items contra la lista entrante:
//   - items existentes ausentes de la lista se eliminan
//   - patches con ID en cero se agregan como items nuevos
//   - patches con ID conocido sobreescriben el item en su lugar,
//     recalculando el descuento
//
// La operación es idempotente: aplicar dos veces la misma lista deja la
// colección igual que aplicarla una vez.
func (s *Sale) MergeItems(patches []ItemPatch) error {
	incoming := make(map[uuid.UUID]bool, len(patches))
	for _, p := range patches {
		if p.ID != uuid.Nil {
			incoming[p.ID] = true
		}
	}

	// Eliminar items que no vienen en la lista entrante
	kept := s.Items[:0]
	for _, item := range s.Items {
		if incoming[item.ID] {
			kept = append(kept, item)
		}
	}
	s.Items = kept

	for _, p := range patches {
		if p.ID == uuid.Nil {
			if err := s.appendItem(uuid.Nil, p); err != nil {
				return err
			}
			continue
		}

		if existing := s.findItem(p.ID); existing != nil {
			if err := existing.Update(p.Product, p.Quantity, p.UnitPrice, p.IsCancelled); err != nil {
				return err
			}
			continue
		}

		// ID desconocido: se agrega preservando el ID recibido para que
		// reaplicar la misma lista no duplique el item
		if err := s.appendItem(p.ID, p); err != nil {
			return err
		}
	}

	return nil
}

func (s *Sale) appendItem(id uuid.UUID, p ItemPatch) error {
	item, err := NewSaleItem(s.ID, p.Product, p.Quantity, p.UnitPrice, p.IsCancelled)
	if err != nil {
		return err
	}
	if id != uuid.Nil {
		item.ID = id
	}
	s.Items = append(s.Items, *item)
	return nil
}

func (s *Sale) findItem(id uuid.UUID) *SaleItem {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}
