package platform

import (
	"github.com/aretw0/jotter/pkg/core"
	"github.com/aretw0/jotter/pkg/ident"
)

// SeedNote describes a note created at startup.
type SeedNote struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	Open    bool   `yaml:"open"`
}

// New builds the application Store. It is meant to be called once at
// startup; the caller owns the Store and closes it on shutdown.
//
//	store, err := jotter.New(jotter.WithMaxOpenNotes(4))
func New(opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	gen := o.generator
	if gen == nil {
		g, err := newGenerator(o)
		if err != nil {
			return nil, err
		}
		gen = g
	}

	store := core.NewStore(gen, core.Config{
		MaxOpenNotes: o.maxOpenNotes,
		Logger:       o.logger,
		Clock:        o.clock,
		EventBuffer:  o.eventBuffer,
	})

	for _, seed := range o.seeds {
		id := store.AddNote(seed.Content, seed.Title)
		if seed.Open && !store.OpenNote(id) && o.logger != nil {
			o.logger.Warn("seed note left closed", "title", seed.Title)
		}
	}

	return store, nil
}

// NewGenerator resolves the identifier generator alone.
func NewGenerator(opts ...Option) (*ident.Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return newGenerator(o)
}

func newGenerator(o *options) (*ident.Generator, error) {
	return ident.Resolve(ident.Config{
		Strategy:     o.idStrategy,
		SecureReader: o.secureReader,
		Bridge:       o.bridge,
		Logger:       o.logger,
		Now:          o.clock,
	})
}
