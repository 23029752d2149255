package platform

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/jotter/pkg/core"
	"github.com/aretw0/jotter/pkg/ident"
)

// options holds the internal configuration for a jotter Store.
type options struct {
	logger       *slog.Logger
	maxOpenNotes int
	eventBuffer  int
	clock        func() time.Time
	idStrategy   string
	bridge       ident.HostBridge
	secureReader io.Reader
	generator    core.IDGenerator
	seeds        []SeedNote
}

// Option defines a functional option for configuring jotter.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		maxOpenNotes: core.DefaultMaxOpenNotes,
		idStrategy:   ident.StrategyAuto,
	}
}

// WithLogger sets the logger for the store and the id generator.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMaxOpenNotes sets how many notes may be open at once.
// Values below 1 fall back to the default (4).
func WithMaxOpenNotes(n int) Option {
	return func(o *options) {
		o.maxOpenNotes = n
	}
}

// WithEventBuffer sets the per-subscriber event buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithClock overrides the time source used for note timestamps.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithIDStrategy forces an identifier strategy ("secure", "host", "pseudo")
// instead of probing ("auto").
func WithIDStrategy(name string) Option {
	return func(o *options) {
		o.idStrategy = name
	}
}

// WithHostBridge registers a random UUID source provided by the embedding shell.
func WithHostBridge(b ident.HostBridge) Option {
	return func(o *options) {
		o.bridge = b
	}
}

// WithSecureReader overrides the entropy source of the secure strategy.
func WithSecureReader(r io.Reader) Option {
	return func(o *options) {
		o.secureReader = r
	}
}

// WithIDGenerator injects a custom generator (e.g. a deterministic one in tests).
// If provided, strategy probing is skipped.
func WithIDGenerator(gen core.IDGenerator) Option {
	return func(o *options) {
		o.generator = gen
	}
}

// WithSeedNotes adds notes to the store right after construction.
func WithSeedNotes(seeds ...SeedNote) Option {
	return func(o *options) {
		o.seeds = append(o.seeds, seeds...)
	}
}
