// Package core holds the note domain: the Note record, the in-memory Store
// with its open-slot and editing-target bookkeeping, and the events it emits.
package core

import (
	"fmt"
	"time"
)

// DefaultMaxOpenNotes is the number of notes that may be open at once
// unless configured otherwise.
const DefaultMaxOpenNotes = 4

// Note is the central entity of the domain.
// ID is assigned by the store and never changes.
type Note struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	IsOpen    bool      `json:"isOpen" yaml:"isOpen"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// NotePatch carries a partial update. Nil fields are left untouched.
type NotePatch struct {
	Title   *string
	Content *string
}

// SetTitle returns a patch that replaces the title.
func SetTitle(title string) NotePatch {
	return NotePatch{Title: &title}
}

// SetContent returns a patch that replaces the content.
func SetContent(content string) NotePatch {
	return NotePatch{Content: &content}
}

// IDGenerator allocates identifiers for new notes.
type IDGenerator interface {
	Generate() string
}

// EventType represents the type of change in the store.
type EventType string

const (
	EventCreate       EventType = "CREATE"
	EventModify       EventType = "MODIFY"
	EventDelete       EventType = "DELETE"
	EventOpen         EventType = "OPEN"
	EventClose        EventType = "CLOSE"
	EventLimitReached EventType = "LIMIT_REACHED"
	EventEditor       EventType = "EDITOR"
)

// Event represents a change in the store.
// For EventEditor, ID is the new editing target and empty when editing stopped.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}
