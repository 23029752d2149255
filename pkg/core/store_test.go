package core_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jotter/pkg/core"
	"github.com/aretw0/jotter/pkg/ident"
)

// seqGenerator hands out note-1, note-2, ... for deterministic tests.
type seqGenerator struct {
	n int
}

func (g *seqGenerator) Generate() string {
	g.n++
	return fmt.Sprintf("note-%d", g.n)
}

// fixedGenerator always returns the same id.
type fixedGenerator string

func (g fixedGenerator) Generate() string { return string(g) }

// stepClock advances one second on every call.
func stepClock() func() time.Time {
	t := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newStore(t *testing.T, cfg core.Config) *core.Store {
	t.Helper()
	if cfg.Clock == nil {
		cfg.Clock = stepClock()
	}
	return core.NewStore(&seqGenerator{}, cfg)
}

func addNotes(s *core.Store, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = s.AddNote(fmt.Sprintf("body %d", i), fmt.Sprintf("Title %d", i))
	}
	return ids
}

func TestStore_AddNote(t *testing.T) {
	s := newStore(t, core.Config{})

	id := s.AddNote("body", "Title")
	n, ok := s.GetNoteByID(id)
	require.True(t, ok)
	assert.Equal(t, "Title", n.Title)
	assert.Equal(t, "body", n.Content)
	assert.False(t, n.IsOpen)
	assert.Equal(t, n.CreatedAt, n.UpdatedAt)
	assert.Equal(t, 1, s.Len())
}

func TestStore_AddNote_UniqueIDs(t *testing.T) {
	s := core.NewStore(ident.MustResolve(ident.Config{}), core.Config{})

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := s.AddNote("", "")
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Equal(t, 1000, s.Len())
}

func TestStore_NilGenerator(t *testing.T) {
	s := core.NewStore(nil, core.Config{})

	id := s.AddNote("", "")
	assert.True(t, ident.IsValidID(id), id)

	state := s.State().(core.StoreState)
	assert.Equal(t, "id-generator", state.IDGenerator)
}

func TestStore_AddNote_CollidingGenerator(t *testing.T) {
	s := core.NewStore(fixedGenerator("same"), core.Config{})

	a := s.AddNote("", "a")
	b := s.AddNote("", "b")
	c := s.AddNote("", "c")

	assert.Equal(t, "same", a)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, b, c)
	assert.Equal(t, 3, s.Len())
}

func TestStore_RemoveNote(t *testing.T) {
	s := newStore(t, core.Config{})
	ids := addNotes(s, 3)

	require.True(t, s.OpenNote(ids[1]))
	s.OpenEditor(ids[1])

	s.RemoveNote(ids[1])

	_, ok := s.GetNoteByID(ids[1])
	assert.False(t, ok)
	assert.Equal(t, 0, s.OpenNotesCount())
	assert.False(t, s.IsNoteEditing(ids[1]))
	_, editing := s.EditingID()
	assert.False(t, editing)

	// Unknown id is a no-op.
	s.RemoveNote("missing")
	assert.Equal(t, 2, s.Len())

	var order []string
	for _, n := range s.Notes() {
		order = append(order, n.ID)
	}
	assert.Equal(t, []string{ids[0], ids[2]}, order)
}

func TestStore_UpdateNote(t *testing.T) {
	s := newStore(t, core.Config{})
	id := s.AddNote("body", "Title")
	before, _ := s.GetNoteByID(id)

	s.UpdateNote(id, core.SetTitle("x"))

	after, _ := s.GetNoteByID(id)
	assert.Equal(t, "x", after.Title)
	assert.Equal(t, "body", after.Content)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))

	s.UpdateNote(id, core.SetContent("new body"))
	after, _ = s.GetNoteByID(id)
	assert.Equal(t, "new body", after.Content)
	assert.Equal(t, "x", after.Title)

	// Unknown id is a no-op.
	s.UpdateNote("missing", core.SetTitle("y"))
	assert.Equal(t, 1, s.Len())
}

func TestStore_UpdatedAtNeverGoesBackwards(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	s := core.NewStore(&seqGenerator{}, core.Config{Clock: clock})

	id := s.AddNote("", "")
	now = now.Add(-time.Hour)
	s.UpdateNote(id, core.SetTitle("skewed"))

	n, _ := s.GetNoteByID(id)
	assert.False(t, n.UpdatedAt.Before(n.CreatedAt))
}

func TestStore_OpenNote_Limit(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	s := newStore(t, core.Config{Logger: logger})
	ids := addNotes(s, 5)

	for _, id := range ids[:4] {
		require.True(t, s.OpenNote(id))
	}
	assert.False(t, s.CanOpenMore())

	assert.False(t, s.OpenNote(ids[4]))
	assert.False(t, s.IsNoteOpen(ids[4]))
	assert.Equal(t, 4, s.OpenNotesCount())
	assert.Contains(t, logs.String(), core.ErrLimitReached.Error())

	// Re-opening an open note does not take a slot.
	assert.True(t, s.OpenNote(ids[0]))
	assert.Equal(t, 4, s.OpenNotesCount())

	assert.False(t, s.OpenNote("missing"))
}

func TestStore_CustomLimit(t *testing.T) {
	s := newStore(t, core.Config{MaxOpenNotes: 2})
	ids := addNotes(s, 3)

	assert.Equal(t, 2, s.MaxOpenNotes())
	assert.True(t, s.OpenNote(ids[0]))
	assert.True(t, s.OpenNote(ids[1]))
	assert.False(t, s.OpenNote(ids[2]))
	assert.Equal(t, 0, s.RemainingSlots())
}

func TestStore_OpenCloseEditingScenario(t *testing.T) {
	s := newStore(t, core.Config{})

	id1 := s.AddNote("body", "Title")
	assert.True(t, s.OpenNote(id1))
	s.CloseNote(id1)
	assert.False(t, s.IsNoteOpen(id1))

	s.CloseEditor()
	assert.False(t, s.IsNoteEditing(id1))
}

func TestStore_CloseNote_ClearsEditing(t *testing.T) {
	s := newStore(t, core.Config{})
	ids := addNotes(s, 2)

	s.OpenNote(ids[0])
	s.OpenEditor(ids[0])
	require.True(t, s.IsNoteEditing(ids[0]))

	s.CloseNote(ids[1])
	assert.True(t, s.IsNoteEditing(ids[0]), "closing another note keeps the target")

	s.CloseNote(ids[0])
	assert.False(t, s.IsNoteEditing(ids[0]))
}

func TestStore_ToggleNoteOpen(t *testing.T) {
	s := newStore(t, core.Config{MaxOpenNotes: 1})
	ids := addNotes(s, 2)

	assert.True(t, s.ToggleNoteOpen(ids[0]))
	assert.True(t, s.IsNoteOpen(ids[0]))

	assert.False(t, s.ToggleNoteOpen(ids[1]), "no slot left")
	assert.False(t, s.IsNoteOpen(ids[1]))

	assert.True(t, s.ToggleNoteOpen(ids[0]))
	assert.False(t, s.IsNoteOpen(ids[0]))

	assert.False(t, s.ToggleNoteOpen("missing"))
}

func TestStore_AutoOpenNotes(t *testing.T) {
	s := newStore(t, core.Config{})
	ids := addNotes(s, 3)

	s.AutoOpenNotes(2)

	open := s.OpenNotes()
	require.Len(t, open, 2)
	assert.Equal(t, ids[0], open[0].ID)
	assert.Equal(t, ids[1], open[1].ID)
	assert.Equal(t, []core.Note{mustGet(t, s, ids[2])}, s.ClosedNotes())
}

func TestStore_AutoOpenNotes_RespectsLimit(t *testing.T) {
	s := newStore(t, core.Config{})
	ids := addNotes(s, 7)
	s.OpenNote(ids[3])

	s.AutoOpenNotes(10)
	assert.Equal(t, 4, s.OpenNotesCount())
	assert.True(t, s.IsNoteOpen(ids[0]))
	assert.True(t, s.IsNoteOpen(ids[1]))
	assert.True(t, s.IsNoteOpen(ids[2]))
	assert.False(t, s.IsNoteOpen(ids[4]))

	s.AutoOpenNotes(0)
	s.AutoOpenNotes(-1)
	assert.Equal(t, 4, s.OpenNotesCount())
}

func TestStore_OpenLimitInvariant(t *testing.T) {
	s := newStore(t, core.Config{})
	ids := addNotes(s, 9)

	for i := 0; i < 50; i++ {
		id := ids[(i*7)%len(ids)]
		switch i % 4 {
		case 0:
			s.OpenNote(id)
		case 1:
			s.ToggleNoteOpen(id)
		case 2:
			s.AutoOpenNotes(i % 5)
		case 3:
			if i%3 == 0 {
				s.CloseNote(id)
			}
		}
		require.LessOrEqual(t, s.OpenNotesCount(), s.MaxOpenNotes())
		require.Len(t, s.OpenNotes(), s.OpenNotesCount())
	}
}

func TestStore_Editor(t *testing.T) {
	s := newStore(t, core.Config{})
	ids := addNotes(s, 2)

	// Editing does not require the note to be open.
	s.OpenEditor(ids[0])
	assert.True(t, s.IsNoteEditing(ids[0]))
	assert.False(t, s.IsNoteOpen(ids[0]))

	s.ToggleEditor(ids[1])
	assert.True(t, s.IsNoteEditing(ids[1]))
	assert.False(t, s.IsNoteEditing(ids[0]))

	s.ToggleEditor(ids[1])
	_, editing := s.EditingID()
	assert.False(t, editing)

	s.OpenEditor("missing")
	_, editing = s.EditingID()
	assert.False(t, editing)

	s.OpenEditor(ids[0])
	s.CloseEditor()
	assert.False(t, s.IsNoteEditing(ids[0]))
	assert.False(t, s.IsNoteEditing(""))
}

func TestStore_MatchTitle(t *testing.T) {
	s := newStore(t, core.Config{})
	s.AddNote("", "work/standup")
	s.AddNote("", "work/retro")
	s.AddNote("", "home/groceries")

	notes, err := s.MatchTitle("work/*")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "work/standup", notes[0].Title)

	notes, err = s.MatchTitle("**/groceries")
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	_, err = s.MatchTitle("[")
	assert.Error(t, err)
}

func TestStore_State(t *testing.T) {
	s := core.NewStore(ident.MustResolve(ident.Config{}), core.Config{})
	id := s.AddNote("", "")
	s.OpenNote(id)
	s.OpenEditor(id)

	state, ok := s.State().(core.StoreState)
	require.True(t, ok)
	assert.Equal(t, 1, state.Notes)
	assert.Equal(t, 1, state.OpenNotes)
	assert.Equal(t, core.DefaultMaxOpenNotes, state.MaxOpenNotes)
	assert.Equal(t, id, state.Editing)
	assert.Equal(t, "id-generator", state.IDGenerator)
	assert.Equal(t, "note-store", s.ComponentType())
}

func mustGet(t *testing.T, s *core.Store, id string) core.Note {
	t.Helper()
	n, ok := s.GetNoteByID(id)
	require.True(t, ok)
	return n
}
