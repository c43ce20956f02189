package persistence

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/entity"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/port"
)

// SaleMemoryRepository implementación en memoria del repositorio de ventas.
// Se usa como respaldo cuando la base de datos no está disponible y en tests.
type SaleMemoryRepository struct {
	mu    sync.RWMutex
	sales map[uuid.UUID]*entity.Sale
	order []uuid.UUID
}

// NewSaleMemoryRepository crea una nueva instancia del repositorio
func NewSaleMemoryRepository() *SaleMemoryRepository {
	return &SaleMemoryRepository{
		sales: make(map[uuid.UUID]*entity.Sale),
	}
}

func cloneSale(s *entity.Sale) *entity.Sale {
	clone := *s
	clone.Items = make([]entity.SaleItem, len(s.Items))
	copy(clone.Items, s.Items)
	return &clone
}

// Create almacena la venta; el sale_number debe ser único
func (r *SaleMemoryRepository) Create(_ context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.sales {
		if existing.SaleNumber == sale.SaleNumber {
			return entity.ErrSaleNumberExists
		}
	}

	r.sales[sale.ID] = cloneSale(sale)
	r.order = append(r.order, sale.ID)
	return nil
}

// GetByID retorna la venta o ErrSaleNotFound
func (r *SaleMemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sale, ok := r.sales[id]
	if !ok {
		return nil, entity.ErrSaleNotFound
	}
	return cloneSale(sale), nil
}

// GetBySaleNumber retorna la venta o ErrSaleNotFound
func (r *SaleMemoryRepository) GetBySaleNumber(_ context.Context, saleNumber string) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sale := range r.sales {
		if sale.SaleNumber == saleNumber {
			return cloneSale(sale), nil
		}
	}
	return nil, entity.ErrSaleNotFound
}

// List filtra, ordena y pagina en memoria. TotalCount siempre refleja el
// total filtrado, independiente de la página pedida.
func (r *SaleMemoryRepository) List(_ context.Context, filters port.ListFilters) (*port.SalePage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]*entity.Sale, 0, len(r.order))
	for _, id := range r.order {
		sale := r.sales[id]
		if matchesFilters(sale, filters) {
			filtered = append(filtered, sale)
		}
	}

	sortSales(filtered, filters.SortBy, filters.IsDesc)

	totalCount := len(filtered)
	windowed := filtered
	if filters.Page > 0 && filters.PageSize > 0 {
		start := (filters.Page - 1) * filters.PageSize
		if start >= totalCount {
			windowed = nil
		} else {
			end := start + filters.PageSize
			if end > totalCount {
				end = totalCount
			}
			windowed = filtered[start:end]
		}
	}

	items := make([]*entity.Sale, 0, len(windowed))
	for _, sale := range windowed {
		items = append(items, cloneSale(sale))
	}

	return &port.SalePage{
		Items:      items,
		Page:       filters.Page,
		PageSize:   filters.PageSize,
		TotalCount: totalCount,
	}, nil
}

func matchesFilters(sale *entity.Sale, filters port.ListFilters) bool {
	if filters.SaleNumber != "" &&
		!strings.Contains(strings.ToLower(sale.SaleNumber), strings.ToLower(filters.SaleNumber)) {
		return false
	}
	if filters.IsCancelled != nil && sale.IsCancelled != *filters.IsCancelled {
		return false
	}
	if filters.Branch != nil && sale.Branch != *filters.Branch {
		return false
	}
	if filters.Customer != nil && sale.Customer != *filters.Customer {
		return false
	}
	if filters.StartDate != nil && sale.SaleDate.Before(*filters.StartDate) {
		return false
	}
	if filters.EndDate != nil && sale.SaleDate.After(*filters.EndDate) {
		return false
	}
	return true
}

func sortSales(sales []*entity.Sale, sortBy string, isDesc bool) {
	if !port.SortableField(sortBy) {
		sortBy = "created_at"
	}

	less := func(a, b *entity.Sale) bool {
		switch sortBy {
		case "sale_number":
			return a.SaleNumber < b.SaleNumber
		case "sale_date":
			return a.SaleDate.Before(b.SaleDate)
		case "customer":
			return a.Customer < b.Customer
		case "branch":
			return a.Branch < b.Branch
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(sales, func(i, j int) bool {
		if isDesc {
			return less(sales[j], sales[i])
		}
		return less(sales[i], sales[j])
	})
}

// Update reemplaza la venta completa o retorna ErrSaleNotFound
func (r *SaleMemoryRepository) Update(_ context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sales[sale.ID]; !ok {
		return entity.ErrSaleNotFound
	}

	for _, existing := range r.sales {
		if existing.ID != sale.ID && existing.SaleNumber == sale.SaleNumber {
			return entity.ErrSaleNumberExists
		}
	}

	r.sales[sale.ID] = cloneSale(sale)
	return nil
}

// Delete elimina la venta y sus items; retorna false si no existía
func (r *SaleMemoryRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sales[id]; !ok {
		return false, nil
	}

	delete(r.sales, id)
	for i, saleID := range r.order {
		if saleID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// GetItemByID busca el item en todas las ventas o retorna ErrSaleItemNotFound
func (r *SaleMemoryRepository) GetItemByID(_ context.Context, id uuid.UUID) (*entity.SaleItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sale := range r.sales {
		for i := range sale.Items {
			if sale.Items[i].ID == id {
				item := sale.Items[i]
				return &item, nil
			}
		}
	}
	return nil, entity.ErrSaleItemNotFound
}

// UpdateItem reemplaza el item dentro de su venta
func (r *SaleMemoryRepository) UpdateItem(_ context.Context, item *entity.SaleItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, sale := range r.sales {
		for i := range sale.Items {
			if sale.Items[i].ID == item.ID {
				sale.Items[i] = *item
				return nil
			}
		}
	}
	return entity.ErrSaleItemNotFound
}

// DeleteItem elimina el item de su venta; retorna false si no existía
func (r *SaleMemoryRepository) DeleteItem(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, sale := range r.sales {
		for i := range sale.Items {
			if sale.Items[i].ID == id {
				sale.Items = append(sale.Items[:i], sale.Items[i+1:]...)
				return true, nil
			}
		}
	}
	return false, nil
}
