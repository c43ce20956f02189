package port

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Eventos de dominio publicados después de cada mutación exitosa
const (
	EventSaleCreated   = "SaleCreated"
	EventSaleCancelled = "SaleCancelled"
	EventSaleDeleted   = "SaleDeleted"
)

// SaleEvent es el payload común de los eventos de venta
type SaleEvent struct {
	SaleID       uuid.UUID `json:"saleId"`
	TimestampUTC time.Time `json:"timestampUtc"`
}

// EventPublisher notifica eventos a suscriptores externos. La publicación es
// best-effort: una falla se registra pero nunca revierte la persistencia que
// la precedió.
type EventPublisher interface {
	Publish(ctx context.Context, eventName string, event SaleEvent)
}
