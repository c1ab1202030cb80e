package main

import (
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAuditEvent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handle := auditEvent(zap.New(core))

	err := handle(amqp.Delivery{Body: []byte(`{"type":"categoria.criada","entity":"categoria","id":4,"occurredAt":"2024-03-01T12:00:00Z"}`)})
	assert.NoError(t, err)
	entries := logs.FilterMessage("catalog event").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "categoria.criada", fields["type"])
		assert.Equal(t, uint64(4), fields["id"])
	}

	assert.Error(t, handle(amqp.Delivery{Body: []byte(`{"entity":"categoria"}`)}))
	assert.Error(t, handle(amqp.Delivery{Body: []byte(`garbage`)}))
}
