// Package log renders registry internals as structured zerolog events.
package log

import (
	"github.com/rs/zerolog"

	"pkg.world.dev/tabula/component"
)

// Loggable is implemented by registries that can report their component
// table and population.
type Loggable interface {
	RegisteredComponents() []component.Metadata
	Len() int
}

func loadComponentIntoArrayLogger(meta component.Metadata, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Int("component_id", int(meta.ID()))
	dictLogger = dictLogger.Str("component_name", meta.Name())
	return arrayLogger.Dict(dictLogger)
}

func loadComponentsToEvent(event *zerolog.Event, target Loggable) *zerolog.Event {
	comps := target.RegisteredComponents()
	event.Int("total_components", len(comps))
	arrayLogger := zerolog.Arr()
	for _, meta := range comps {
		arrayLogger = loadComponentIntoArrayLogger(meta, arrayLogger)
	}
	return event.Array("components", arrayLogger)
}

// Components logs the component table of target.
func Components(logger *zerolog.Logger, target Loggable, level zerolog.Level) {
	event := logger.WithLevel(level)
	event = loadComponentsToEvent(event, target)
	event.Send()
}

// Entity logs one entity's handle bits and the components it owns.
func Entity(logger *zerolog.Logger, level zerolog.Level, id uint64, components []component.Metadata) {
	arrayLogger := zerolog.Arr()
	for _, meta := range components {
		arrayLogger = loadComponentIntoArrayLogger(meta, arrayLogger)
	}
	event := logger.WithLevel(level)
	event.Array("components", arrayLogger)
	event.Uint64("entity_id", id)
	event.Send()
}

// Registry logs everything about the registry: its component table and its
// live entity count.
func Registry(logger *zerolog.Logger, target Loggable, level zerolog.Level) {
	event := logger.WithLevel(level)
	event = loadComponentsToEvent(event, target)
	event.Int("live_entities", target.Len())
	event.Send()
}

// CreateQueryLogger creates a sub logger with the entry {"query": query}.
func CreateQueryLogger(logger *zerolog.Logger, query string) *zerolog.Logger {
	queryLogger := logger.With().Str("query", query).Logger()
	return &queryLogger
}
