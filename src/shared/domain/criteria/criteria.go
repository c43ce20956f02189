package criteria

// FilterOperator es el operador SQL-neutral de un filtro
type FilterOperator string

const (
	OpEqual              FilterOperator = "="
	OpNotEqual           FilterOperator = "!="
	OpGreaterThan        FilterOperator = ">"
	OpGreaterThanOrEqual FilterOperator = ">="
	OpLessThan           FilterOperator = "<"
	OpLessThanOrEqual    FilterOperator = "<="
	OpLike               FilterOperator = "LIKE"
	OpILike              FilterOperator = "ILIKE"
	OpIsNull             FilterOperator = "NULL"
	OpIsNotNull          FilterOperator = "NOT NULL"
)

// Filter es un predicado sobre un campo
type Filter struct {
	Field    string
	Operator FilterOperator
	Value    interface{}
}

// NewFilter crea un filtro
func NewFilter(field string, operator FilterOperator, value interface{}) Filter {
	return Filter{Field: field, Operator: operator, Value: value}
}

// Filters es la colección de predicados de una consulta (se combinan con AND)
type Filters struct {
	Items []Filter
}

// NewFilters crea una colección de filtros
func NewFilters(filters ...Filter) Filters {
	return Filters{Items: filters}
}

// Add agrega un filtro a la colección
func (f *Filters) Add(filter Filter) {
	f.Items = append(f.Items, filter)
}

// IsEmpty indica si no hay filtros
func (f Filters) IsEmpty() bool {
	return len(f.Items) == 0
}

// OrderType es la dirección del ordenamiento
type OrderType string

const (
	ASC  OrderType = "ASC"
	DESC OrderType = "DESC"
)

// Order es el ordenamiento de una consulta
type Order struct {
	Field     string
	OrderType OrderType
}

// NewOrder crea un ordenamiento
func NewOrder(field string, orderType OrderType) Order {
	return Order{Field: field, OrderType: orderType}
}

// IsEmpty indica si no hay ordenamiento
func (o Order) IsEmpty() bool {
	return o.Field == ""
}

// Criteria agrupa filtros, ordenamiento y paginación de una consulta.
// Limit y Offset en nil significan "sin paginación".
type Criteria struct {
	Filters Filters
	Order   Order
	Limit   *int
	Offset  *int
}

// NewCriteria crea un criteria completo
func NewCriteria(filters Filters, order Order, limit, offset *int) Criteria {
	return Criteria{Filters: filters, Order: order, Limit: limit, Offset: offset}
}

// WithPage deriva Limit/Offset de una paginación 1-based. Página o tamaño en
// cero o negativos dejan el criteria sin paginar.
func (c Criteria) WithPage(page, pageSize int) Criteria {
	if page <= 0 || pageSize <= 0 {
		return c
	}
	limit := pageSize
	offset := (page - 1) * pageSize
	c.Limit = &limit
	c.Offset = &offset
	return c
}
