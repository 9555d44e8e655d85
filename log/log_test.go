package log_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"pkg.world.dev/tabula/assert"
	"pkg.world.dev/tabula/component"
	"pkg.world.dev/tabula/log"
)

type Position struct{ X, Y float64 }
type Velocity struct{ DX, DY float64 }

type registryStub struct {
	manager *component.Manager
	live    int
}

func (s *registryStub) RegisteredComponents() []component.Metadata {
	return s.manager.Components()
}

func (s *registryStub) Len() int {
	return s.live
}

func newStub() *registryStub {
	m := component.NewManager()
	component.ID[Position](m)
	component.ID[Velocity](m)
	return &registryStub{manager: m, live: 3}
}

func TestComponents(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	log.Components(&logger, newStub(), zerolog.InfoLevel)

	assert.JSONEq(t, `{
		"level": "info",
		"total_components": 2,
		"components": [
			{"component_id": 0, "component_name": "Position"},
			{"component_id": 1, "component_name": "Velocity"}
		]
	}`, buf.String())
}

func TestRegistry(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	log.Registry(&logger, newStub(), zerolog.DebugLevel)

	assert.Contains(t, buf.String(), `"live_entities":3`)
	assert.Contains(t, buf.String(), `"total_components":2`)
	assert.Contains(t, buf.String(), `"level":"debug"`)
}

func TestEntity(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	stub := newStub()

	log.Entity(&logger, zerolog.InfoLevel, 42, stub.manager.Components()[:1])

	assert.JSONEq(t, `{
		"level": "info",
		"entity_id": 42,
		"components": [{"component_id": 0, "component_name": "Position"}]
	}`, buf.String())
}

func TestCreateQueryLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	queryLogger := log.CreateQueryLogger(&logger, "CONTAINS(Position)")
	queryLogger.Info().Msg("query compiled")

	assert.Contains(t, buf.String(), `"query":"CONTAINS(Position)"`)
	assert.Contains(t, buf.String(), `"message":"query compiled"`)
}
