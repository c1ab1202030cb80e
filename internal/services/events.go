package services

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Routing keys of the catalog events.
const (
	ProdutoCriado       = "produto.criado"
	ProdutoAtualizado   = "produto.atualizado"
	ProdutoExcluido     = "produto.excluido"
	CategoriaCriada     = "categoria.criada"
	CategoriaAtualizada = "categoria.atualizada"
	CategoriaExcluida   = "categoria.excluida"
)

const (
	entityProduto   = "produto"
	entityCategoria = "categoria"
)

// EventPublisher sends an encoded event to the message broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// CatalogEvent is published after a change has been committed.
type CatalogEvent struct {
	Type       string          `json:"type"`
	Entity     string          `json:"entity"`
	ID         uint            `json:"id"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// DecodeCatalogEvent parses an event received from the broker.
func DecodeCatalogEvent(body []byte) (CatalogEvent, error) {
	var event CatalogEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return CatalogEvent{}, fmt.Errorf("failed to decode catalog event: %w", err)
	}
	if event.Type == "" {
		return CatalogEvent{}, fmt.Errorf("catalog event without type")
	}
	return event, nil
}

// eventNotifier publishes events without ever failing the request that caused them.
type eventNotifier struct {
	publisher EventPublisher
	log       *zap.Logger
}

func (n eventNotifier) notify(routingKey, entity string, id uint, data any) {
	if n.publisher == nil {
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		n.log.Warn("failed to marshal event data", zap.String("routing_key", routingKey), zap.Error(err))
		return
	}
	body, err := json.Marshal(CatalogEvent{
		Type:       routingKey,
		Entity:     entity,
		ID:         id,
		OccurredAt: time.Now().UTC(),
		Data:       payload,
	})
	if err != nil {
		n.log.Warn("failed to marshal event", zap.String("routing_key", routingKey), zap.Error(err))
		return
	}

	if err := n.publisher.Publish(routingKey, body); err != nil {
		n.log.Warn("failed to publish catalog event",
			zap.String("routing_key", routingKey), zap.Uint("id", id), zap.Error(err))
	}
}
