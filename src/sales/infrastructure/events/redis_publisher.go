package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/port"
)

const publishTimeout = 5 * time.Second

// RedisEventPublisher publica eventos de dominio en canales Redis pub/sub.
// La publicación es best-effort: un fallo se registra y no interrumpe la
// operación que lo originó.
type RedisEventPublisher struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewRedisEventPublisher crea una nueva instancia del publicador
func NewRedisEventPublisher(client *redis.Client, prefix string, logger *zap.Logger) *RedisEventPublisher {
	return &RedisEventPublisher{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

// Publish serializa el evento y lo publica en <prefix>.<eventName>
func (p *RedisEventPublisher) Publish(ctx context.Context, eventName string, event port.SaleEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal event",
			zap.String("event", eventName), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	channel := p.prefix + "." + eventName
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("event", eventName),
			zap.String("channel", channel),
			zap.String("sale_id", event.SaleID.String()),
			zap.Error(err))
		return
	}

	p.logger.Debug("event published",
		zap.String("event", eventName),
		zap.String("sale_id", event.SaleID.String()))
}

// NoopEventPublisher descarta los eventos. Se usa cuando Redis no está
// configurado o no responde al arranque.
type NoopEventPublisher struct{}

// NewNoopEventPublisher crea una nueva instancia del publicador nulo
func NewNoopEventPublisher() *NoopEventPublisher {
	return &NoopEventPublisher{}
}

// Publish no hace nada
func (p *NoopEventPublisher) Publish(_ context.Context, _ string, _ port.SaleEvent) {}
