package ident

import (
	"github.com/aretw0/introspection"
)

// GeneratorState exposes the resolved strategy chain for observability.
type GeneratorState struct {
	Strategy  string   `json:"strategy"`
	Fallbacks []string `json:"fallbacks,omitempty"`
	Counter   int      `json:"counter"`
}

// State implements introspection.Introspectable.
func (g *Generator) State() any {
	g.mu.Lock()
	defer g.mu.Unlock()

	fallbacks := make([]string, 0, len(g.chain)-1)
	for _, s := range g.chain[1:] {
		fallbacks = append(fallbacks, s.Name())
	}

	return GeneratorState{
		Strategy:  g.chain[0].Name(),
		Fallbacks: fallbacks,
		Counter:   g.counter,
	}
}

// ComponentType implements introspection.Component.
func (g *Generator) ComponentType() string {
	return "id-generator"
}

var _ introspection.Introspectable = (*Generator)(nil)
var _ introspection.Component = (*Generator)(nil)
