package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/entity"
)

// ListFilters son los predicados opcionales del listado de ventas.
// Todos los filtros presentes se combinan con AND. Page y PageSize en cero o
// negativos significan "sin paginar": se retorna el conjunto filtrado completo.
type ListFilters struct {
	// SaleNumber filtra por coincidencia parcial, sin distinguir mayúsculas
	SaleNumber  string
	IsCancelled *bool
	Branch      *entity.Branch
	Customer    *entity.Customer
	// Rango inclusivo sobre la fecha de venta
	StartDate *time.Time
	EndDate   *time.Time

	Page     int
	PageSize int
	// SortBy debe ser uno de SortableFields; vacío ordena por creación
	SortBy string
	IsDesc bool
}

// SalePage es una página del listado. TotalCount siempre es la cantidad de
// ventas que cumplen los filtros, independiente de la ventana de paginación.
type SalePage struct {
	Items      []*entity.Sale
	Page       int
	PageSize   int
	TotalCount int
}

// Campos de ordenamiento permitidos. Cualquier otro valor cae al orden por
// defecto (fecha de creación) sin fallar la consulta.
var SortableFields = []string{"sale_number", "sale_date", "customer", "branch", "created_at"}

// SortableField indica si el campo es ordenable
func SortableField(field string) bool {
	for _, f := range SortableFields {
		if f == field {
			return true
		}
	}
	return false
}

// SaleRepository define el contrato de persistencia para ventas.
// Create y Update persisten el aggregate completo (venta + items) de forma
// atómica; Delete cascadea a los items. La unicidad de sale_number se
// garantiza en esta capa, no en el aggregate.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetBySaleNumber(ctx context.Context, saleNumber string) (*entity.Sale, error)
	List(ctx context.Context, filters ListFilters) (*SalePage, error)
	// Update reemplaza los campos de la venta y su colección de items
	// completa. La lógica de merge vive en la capa de aplicación.
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Acceso directo a items para los casos de uso item-céntricos
	GetItemByID(ctx context.Context, id uuid.UUID) (*entity.SaleItem, error)
	UpdateItem(ctx context.Context, item *entity.SaleItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) (bool, error)
}
