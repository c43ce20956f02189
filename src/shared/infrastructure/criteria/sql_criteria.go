package criteria

import (
	"fmt"
	"strconv"
	"strings"

	domainCriteria "github.com/roothery/abi-gth-omnia-developer-evaluation/src/shared/domain/criteria"
)

// SQLCriteriaConverter convierte un objeto Criteria en una consulta SQL
// con placeholders posicionales de PostgreSQL ($1, $2, ...)
type SQLCriteriaConverter struct{}

// NewSQLCriteriaConverter crea una nueva instancia del conversor
func NewSQLCriteriaConverter() *SQLCriteriaConverter {
	return &SQLCriteriaConverter{}
}

// ToSelectSQL convierte un criteria a una consulta SELECT completa con sus parámetros
func (s *SQLCriteriaConverter) ToSelectSQL(baseQuery string, criteria domainCriteria.Criteria) (string, []interface{}) {
	var parts []string
	var params []interface{}

	parts = append(parts, baseQuery)

	if !criteria.Filters.IsEmpty() {
		whereClause, whereParams := s.buildWhereClause(criteria.Filters)
		parts = append(parts, whereClause)
		params = append(params, whereParams...)
	}

	if !criteria.Order.IsEmpty() {
		parts = append(parts, s.buildOrderClause(criteria.Order))
	}

	if criteria.Limit != nil && criteria.Offset != nil {
		parts = append(parts, s.buildLimitClause(criteria.Limit, criteria.Offset))
	}

	return strings.Join(parts, " "), params
}

// ToCountSQL convierte un criteria a una consulta COUNT con sus parámetros.
// No lleva ORDER BY ni LIMIT: el total es sobre el conjunto filtrado completo.
func (s *SQLCriteriaConverter) ToCountSQL(baseCountQuery string, criteria domainCriteria.Criteria) (string, []interface{}) {
	var parts []string
	var params []interface{}

	parts = append(parts, baseCountQuery)

	if !criteria.Filters.IsEmpty() {
		whereClause, whereParams := s.buildWhereClause(criteria.Filters)
		parts = append(parts, whereClause)
		params = append(params, whereParams...)
	}

	return strings.Join(parts, " "), params
}

// buildWhereClause construye la cláusula WHERE con sus parámetros
func (s *SQLCriteriaConverter) buildWhereClause(filters domainCriteria.Filters) (string, []interface{}) {
	var conditions []string
	var params []interface{}

	paramIndex := 1
	for _, filter := range filters.Items {
		condition, value := s.processFilter(filter, paramIndex)
		conditions = append(conditions, condition)
		if value != nil {
			params = append(params, value)
			paramIndex++
		}
	}

	if len(conditions) > 0 {
		return fmt.Sprintf("WHERE %s", strings.Join(conditions, " AND ")), params
	}

	return "", params
}

// buildOrderClause construye la cláusula ORDER BY
func (s *SQLCriteriaConverter) buildOrderClause(order domainCriteria.Order) string {
	return fmt.Sprintf("ORDER BY %s %s", order.Field, string(order.OrderType))
}

// buildLimitClause construye la cláusula LIMIT y OFFSET
func (s *SQLCriteriaConverter) buildLimitClause(limit, offset *int) string {
	return fmt.Sprintf("LIMIT %d OFFSET %d", *limit, *offset)
}

// processFilter convierte un filtro en una condición SQL con su placeholder
func (s *SQLCriteriaConverter) processFilter(filter domainCriteria.Filter, paramIndex int) (string, interface{}) {
	placeholder := "$" + strconv.Itoa(paramIndex)

	switch filter.Operator {
	case domainCriteria.OpEqual, domainCriteria.OpNotEqual, domainCriteria.OpGreaterThan,
		domainCriteria.OpGreaterThanOrEqual, domainCriteria.OpLessThan, domainCriteria.OpLessThanOrEqual:
		return fmt.Sprintf("%s %s %s", filter.Field, filter.Operator, placeholder), filter.Value
	case domainCriteria.OpLike, domainCriteria.OpILike:
		// Asegurar que el valor sea compatible con LIKE
		if str, ok := filter.Value.(string); ok && !strings.Contains(str, "%") {
			filter.Value = "%" + str + "%"
		}
		return fmt.Sprintf("%s %s %s", filter.Field, filter.Operator, placeholder), filter.Value
	case domainCriteria.OpIsNull:
		return fmt.Sprintf("%s IS NULL", filter.Field), nil
	case domainCriteria.OpIsNotNull:
		return fmt.Sprintf("%s IS NOT NULL", filter.Field), nil
	default:
		return fmt.Sprintf("%s = %s", filter.Field, placeholder), filter.Value
	}
}
