package tabula

import (
	"os"

	"github.com/rs/zerolog"

	"pkg.world.dev/tabula/component"
)

// settings collects the construction knobs that do not depend on the handle
// width.
type settings struct {
	logger     zerolog.Logger
	pretty     bool
	components *component.Manager
	capacity   int
}

// buildLogger resolves the logger the registry will carry.
func (s *settings) buildLogger() zerolog.Logger {
	if s.pretty {
		return s.logger.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
	}
	return s.logger
}

// Option augments how a registry is built.
type Option struct {
	apply func(*settings)
}

// WithLogger routes the registry's structured events to logger. Without it
// the registry logs nowhere.
func WithLogger(logger zerolog.Logger) Option {
	return Option{apply: func(s *settings) { s.logger = logger }}
}

// WithPrettyLog makes the registry log human-readably to stderr, for
// development use.
func WithPrettyLog() Option {
	return Option{apply: func(s *settings) { s.pretty = true }}
}

// WithComponents makes the registry assign component bits through m instead
// of a private manager. Registries sharing a manager agree on every
// component's bit position, at the price of sharing the type ceiling. The
// manager is not synchronized.
func WithComponents(m *component.Manager) Option {
	return Option{apply: func(s *settings) { s.components = m }}
}

// WithInitialCapacity pre-sizes the entity table for n entities, skipping
// the early growth steps of a registry that is about to be filled.
func WithInitialCapacity(n int) Option {
	return Option{apply: func(s *settings) { s.capacity = n }}
}
