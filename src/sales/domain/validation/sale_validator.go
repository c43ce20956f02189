package validation

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/entity"
)

// FieldError es una violación puntual de una regla sobre un campo
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result es el reporte completo de la validación de una venta
type Result struct {
	IsValid bool         `json:"is_valid"`
	Errors  []FieldError `json:"errors"`
}

// Error envuelve un Result inválido para transportarlo como error hasta la
// capa que lo traduce a una respuesta
type Error struct {
	Errors []FieldError
}

func (e *Error) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
}

// NewError construye el error de validación a partir del reporte
func NewError(errs []FieldError) *Error {
	return &Error{Errors: errs}
}

// saleRule es una regla declarativa sobre la venta: predicado + mensaje.
// Todas las reglas se evalúan siempre; el reporte acumula cada violación.
type saleRule struct {
	field   string
	message string
	valid   func(s *entity.Sale, now time.Time) bool
}

var saleRules = []saleRule{
	{
		field:   "saleNumber",
		message: "Sale number is required.",
		valid:   func(s *entity.Sale, _ time.Time) bool { return s.SaleNumber != "" },
	},
	{
		// Largo en caracteres, no en bytes
		field:   "saleNumber",
		message: "Sale number must be at least 5 characters long.",
		valid:   func(s *entity.Sale, _ time.Time) bool { return utf8.RuneCountInString(s.SaleNumber) >= 5 },
	},
	{
		field:   "saleNumber",
		message: "Sale number cannot be longer than 20 characters.",
		valid:   func(s *entity.Sale, _ time.Time) bool { return utf8.RuneCountInString(s.SaleNumber) <= 20 },
	},
	{
		field:   "saleDate",
		message: "Sale date must be less than or equal to the current date.",
		valid:   func(s *entity.Sale, now time.Time) bool { return !s.SaleDate.After(now) },
	},
	{
		field:   "customer",
		message: "Customer is invalid",
		valid:   func(s *entity.Sale, _ time.Time) bool { return s.Customer.IsValid() },
	},
	{
		field:   "branch",
		message: "Branch is invalid",
		valid:   func(s *entity.Sale, _ time.Time) bool { return s.Branch.IsValid() },
	},
	{
		field:   "items",
		message: "Sale must contain at least one item.",
		valid:   func(s *entity.Sale, _ time.Time) bool { return len(s.Items) > 0 },
	},
	{
		// Las ventas canceladas están exentas de la regla de total
		field:   "totalAmount",
		message: "Total amount must be greater than 0 if the sale is not cancelled.",
		valid: func(s *entity.Sale, _ time.Time) bool {
			return s.IsCancelled || s.TotalAmount().GreaterThan(decimal.Zero)
		},
	},
}

type itemRule struct {
	field   string
	message string
	valid   func(i *entity.SaleItem) bool
}

var itemRules = []itemRule{
	{
		field:   "product",
		message: "Product is invalid.",
		valid:   func(i *entity.SaleItem) bool { return i.Product.IsValid() },
	},
	{
		field:   "quantity",
		message: "Item quantity must be greater than 0 and less than or equal to 20.",
		valid: func(i *entity.SaleItem) bool {
			return i.Quantity >= entity.MinItemQuantity && i.Quantity <= entity.MaxItemQuantity
		},
	},
	{
		field:   "unitPrice",
		message: "Unit price must be greater than or equal to 0.",
		valid:   func(i *entity.SaleItem) bool { return i.UnitPrice.GreaterThanOrEqual(decimal.Zero) },
	},
	{
		field:   "discount",
		message: "Discount must be greater than or equal to 0.",
		valid:   func(i *entity.SaleItem) bool { return i.Discount.GreaterThanOrEqual(decimal.Zero) },
	},
	{
		// Solo exigible en items no cancelados: un item cancelado totaliza cero
		field:   "totalAmount",
		message: "Total amount must be greater than 0.",
		valid: func(i *entity.SaleItem) bool {
			return i.IsCancelled || i.TotalAmount().GreaterThan(decimal.Zero)
		},
	},
}

// ValidateSale evalúa todas las reglas contra la hora actual
func ValidateSale(s *entity.Sale) Result {
	return ValidateSaleAt(s, time.Now())
}

// ValidateSaleAt evalúa todas las reglas de la venta y de cada uno de sus
// items sin cortar en la primera falla. No muta la venta.
func ValidateSaleAt(s *entity.Sale, now time.Time) Result {
	var errs []FieldError

	for _, rule := range saleRules {
		if !rule.valid(s, now) {
			errs = append(errs, FieldError{Field: rule.field, Message: rule.message})
		}
	}

	for idx := range s.Items {
		item := &s.Items[idx]
		for _, rule := range itemRules {
			if !rule.valid(item) {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("items[%d].%s", idx, rule.field),
					Message: rule.message,
				})
			}
		}
	}

	return Result{IsValid: len(errs) == 0, Errors: errs}
}
