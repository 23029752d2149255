package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/jotter/pkg/ident"
)

// maxIDAttempts bounds how often AddNote asks the generator for a fresh id
// before disambiguating a collision itself.
const maxIDAttempts = 8

// Config holds the configuration for a Store.
type Config struct {
	MaxOpenNotes int // Zero means DefaultMaxOpenNotes.
	Logger       *slog.Logger
	Clock        func() time.Time
	EventBuffer  int // Per-subscriber buffer. Zero means 100.
}

// Store is the in-memory note collection.
//
// Every operation runs to completion before returning and is total over
// unknown ids: mutations become no-ops and predicates report false.
type Store struct {
	mu       sync.RWMutex
	ids      IDGenerator
	notes    map[string]*Note
	order    []string // insertion order
	open     int
	editing  string
	maxOpen  int
	logger   *slog.Logger
	clock    func() time.Time
	buffer   int
	watchers map[chan Event]struct{}
	closed   bool
}

// NewStore creates an empty Store that allocates ids from gen. A nil gen
// gets an auto-resolved ident.Generator.
func NewStore(gen IDGenerator, cfg Config) *Store {
	if cfg.MaxOpenNotes <= 0 {
		cfg.MaxOpenNotes = DefaultMaxOpenNotes
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = 100
	}
	if gen == nil {
		gen = ident.MustResolve(ident.Config{Logger: cfg.Logger})
	}

	return &Store{
		ids:      gen,
		notes:    make(map[string]*Note),
		maxOpen:  cfg.MaxOpenNotes,
		logger:   cfg.Logger,
		clock:    cfg.Clock,
		buffer:   cfg.EventBuffer,
		watchers: make(map[chan Event]struct{}),
	}
}

// AddNote inserts a closed note and returns its id.
func (s *Store) AddNote(content, title string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.allocateID()
	now := s.clock()
	s.notes[id] = &Note{
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.order = append(s.order, id)

	s.logger.Debug("note added", "id", id)
	s.emit(EventCreate, id)
	return id
}

func (s *Store) allocateID() string {
	var id string
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id = s.ids.Generate()
		if _, taken := s.notes[id]; !taken && id != "" {
			return id
		}
		s.logger.Debug("id collision, retrying", "id", id, "attempt", attempt+1)
	}
	base := id
	for n := 2; ; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
		if _, taken := s.notes[id]; !taken {
			return id
		}
	}
}

// RemoveNote deletes the note and clears the editing target if it pointed at it.
func (s *Store) RemoveNote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return
	}
	if n.IsOpen {
		s.open--
	}
	delete(s.notes, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	s.emit(EventDelete, id)
	if s.editing == id {
		s.setEditing("")
	}
}

// UpdateNote merges patch into the note and refreshes UpdatedAt.
func (s *Store) UpdateNote(id string, patch NotePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return
	}
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	s.touch(n)
	s.emit(EventModify, id)
}

// OpenNote opens the note if a slot is free. At the limit it logs a warning,
// emits EventLimitReached and returns false. Opening an already open note
// succeeds without using another slot.
func (s *Store) OpenNote(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return false
	}
	return s.openLocked(n)
}

func (s *Store) openLocked(n *Note) bool {
	if n.IsOpen {
		return true
	}
	if s.open >= s.maxOpen {
		s.logger.Warn(ErrLimitReached.Error(), "id", n.ID, "max_open_notes", s.maxOpen)
		s.emit(EventLimitReached, n.ID)
		return false
	}
	n.IsOpen = true
	s.open++
	s.touch(n)
	s.emit(EventOpen, n.ID)
	return true
}

// CloseNote closes the note and clears the editing target if it pointed at it.
func (s *Store) CloseNote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return
	}
	s.closeLocked(n)
}

func (s *Store) closeLocked(n *Note) {
	if n.IsOpen {
		n.IsOpen = false
		s.open--
		s.touch(n)
		s.emit(EventClose, n.ID)
	}
	if s.editing == n.ID {
		s.setEditing("")
	}
}

// ToggleNoteOpen closes an open note (always true) or tries to open a closed
// one, returning OpenNote's result. Unknown ids return false.
func (s *Store) ToggleNoteOpen(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return false
	}
	if n.IsOpen {
		s.closeLocked(n)
		return true
	}
	return s.openLocked(n)
}

// AutoOpenNotes opens up to count closed notes in insertion order without
// exceeding the open limit.
func (s *Store) AutoOpenNotes(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opened := 0
	for _, id := range s.order {
		if opened >= count || s.open >= s.maxOpen {
			break
		}
		n := s.notes[id]
		if n.IsOpen {
			continue
		}
		if s.openLocked(n) {
			opened++
		}
	}
	if opened > 0 {
		s.logger.Debug("auto-opened notes", "count", opened)
	}
}

// OpenEditor makes id the editing target. The note does not need to be open.
func (s *Store) OpenEditor(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return
	}
	s.setEditing(id)
}

// CloseEditor clears the editing target.
func (s *Store) CloseEditor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setEditing("")
}

// ToggleEditor clears the target if id is already being edited, otherwise
// switches the target to id.
func (s *Store) ToggleEditor(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editing == id && id != "" {
		s.setEditing("")
		return
	}
	if _, ok := s.notes[id]; !ok {
		return
	}
	s.setEditing(id)
}

func (s *Store) setEditing(id string) {
	if s.editing == id {
		return
	}
	s.editing = id
	s.emit(EventEditor, id)
}

// touch refreshes UpdatedAt, never moving it backwards.
func (s *Store) touch(n *Note) {
	if now := s.clock(); now.After(n.UpdatedAt) {
		n.UpdatedAt = now
	}
}

// --- Queries ---

// GetNoteByID returns a copy of the note.
func (s *Store) GetNoteByID(id string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notes[id]
	if !ok {
		return Note{}, false
	}
	return *n, true
}

// Notes returns copies of all notes in insertion order.
func (s *Store) Notes() []Note {
	return s.filter(func(*Note) bool { return true })
}

// OpenNotes returns the open notes in insertion order.
func (s *Store) OpenNotes() []Note {
	return s.filter(func(n *Note) bool { return n.IsOpen })
}

// ClosedNotes returns the closed notes in insertion order.
func (s *Store) ClosedNotes() []Note {
	return s.filter(func(n *Note) bool { return !n.IsOpen })
}

// MatchTitle returns the notes whose title matches the doublestar glob pattern.
func (s *Store) MatchTitle(pattern string) ([]Note, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid title pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	return s.filter(func(n *Note) bool {
		ok, _ := doublestar.Match(pattern, n.Title)
		return ok
	}), nil
}

func (s *Store) filter(keep func(*Note) bool) []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Note, 0, len(s.order))
	for _, id := range s.order {
		if n := s.notes[id]; keep(n) {
			out = append(out, *n)
		}
	}
	return out
}

// Len returns the number of notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// OpenNotesCount returns how many notes are open.
func (s *Store) OpenNotesCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open
}

// MaxOpenNotes returns the open limit.
func (s *Store) MaxOpenNotes() int {
	return s.maxOpen
}

// RemainingSlots returns how many more notes can be opened.
func (s *Store) RemainingSlots() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxOpen - s.open
}

// CanOpenMore reports whether at least one slot is free.
func (s *Store) CanOpenMore() bool {
	return s.RemainingSlots() > 0
}

// IsNoteOpen reports whether the note exists and is open.
func (s *Store) IsNoteOpen(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notes[id]
	return ok && n.IsOpen
}

// IsNoteEditing reports whether id is the editing target.
func (s *Store) IsNoteEditing(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return id != "" && s.editing == id
}

// EditingID returns the editing target, if any.
func (s *Store) EditingID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editing, s.editing != ""
}

// --- Events ---

// Watch subscribes to store events until ctx is done or the store is closed.
// Delivery never blocks a store operation: when the subscriber's buffer is
// full the event is dropped.
func (s *Store) Watch(ctx context.Context) <-chan Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Event, s.buffer)
	if s.closed {
		close(ch)
		return ch
	}
	s.watchers[ch] = struct{}{}

	context.AfterFunc(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.watchers[ch]; ok {
			delete(s.watchers, ch)
			close(ch)
		}
	})
	return ch
}

// Close ends every subscription. The notes stay readable and writable.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for ch := range s.watchers {
		delete(s.watchers, ch)
		close(ch)
	}
	return nil
}

// emit must be called with s.mu held.
func (s *Store) emit(t EventType, id string) {
	if len(s.watchers) == 0 {
		return
	}
	e := Event{Type: t, ID: id, Timestamp: s.clock().Unix()}
	for ch := range s.watchers {
		select {
		case ch <- e:
		default:
			s.logger.Debug("event dropped, subscriber buffer full", "type", t, "id", id)
		}
	}
}
