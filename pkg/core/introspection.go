package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Notes        int    `json:"notes"`
	OpenNotes    int    `json:"open_notes"`
	MaxOpenNotes int    `json:"max_open_notes"`
	Editing      string `json:"editing,omitempty"`
	Subscribers  int    `json:"subscribers"`
	IDGenerator  string `json:"id_generator"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	genType := "unknown"
	if s.ids != nil {
		genType = "generator"
		if comp, ok := s.ids.(introspection.Component); ok {
			genType = comp.ComponentType()
		}
	}

	return StoreState{
		Notes:        len(s.order),
		OpenNotes:    s.open,
		MaxOpenNotes: s.maxOpen,
		Editing:      s.editing,
		Subscribers:  len(s.watchers),
		IDGenerator:  genType,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "note-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
