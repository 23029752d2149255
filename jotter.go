package jotter

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/jotter/internal/platform"
	"github.com/aretw0/jotter/pkg/core"
	"github.com/aretw0/jotter/pkg/ident"
)

// --- Types ---

// Store is the in-memory note collection.
type Store = core.Store

// Note is a single note record.
type Note = core.Note

// SeedNote describes a note created at startup.
type SeedNote = platform.SeedNote

// FileConfig is the YAML config file layout.
type FileConfig = platform.FileConfig

// --- Configuration ---

// Option defines a functional option for configuring jotter.
type Option = platform.Option

// WithLogger sets the logger for the store and the id generator.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithMaxOpenNotes sets how many notes may be open at once.
func WithMaxOpenNotes(n int) Option {
	return platform.WithMaxOpenNotes(n)
}

// WithEventBuffer sets the per-subscriber event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithClock overrides the time source used for note timestamps.
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithIDStrategy forces an identifier strategy instead of probing.
func WithIDStrategy(name string) Option {
	return platform.WithIDStrategy(name)
}

// WithHostBridge registers a random UUID source provided by the embedding shell.
func WithHostBridge(b ident.HostBridge) Option {
	return platform.WithHostBridge(b)
}

// WithSecureReader overrides the entropy source of the secure strategy.
func WithSecureReader(r io.Reader) Option {
	return platform.WithSecureReader(r)
}

// WithIDGenerator injects a custom generator.
func WithIDGenerator(gen core.IDGenerator) Option {
	return platform.WithIDGenerator(gen)
}

// WithSeedNotes adds notes right after construction.
func WithSeedNotes(seeds ...SeedNote) Option {
	return platform.WithSeedNotes(seeds...)
}

// --- Factory ---

// New creates the application Store.
func New(opts ...Option) (*Store, error) {
	return platform.New(opts...)
}

// NewGenerator resolves the identifier generator alone.
func NewGenerator(opts ...Option) (*ident.Generator, error) {
	return platform.NewGenerator(opts...)
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*FileConfig, error) {
	return platform.LoadConfig(path)
}

// FindConfig looks upwards from dir for .jotter.yaml or jotter.yaml.
func FindConfig(dir string) (string, error) {
	return platform.FindConfig(dir)
}

// IsValidID reports whether id has a recognized note id shape.
func IsValidID(id string) bool {
	return ident.IsValidID(id)
}

// SetTitle returns a patch that replaces a note's title.
func SetTitle(title string) core.NotePatch {
	return core.SetTitle(title)
}

// SetContent returns a patch that replaces a note's content.
func SetContent(content string) core.NotePatch {
	return core.SetContent(content)
}
