// Package jotter is the Composition Root for the jotter note-taking core.
//
// It wires the note Store (pkg/core) to an identifier Generator (pkg/ident)
// resolved once at startup, and exposes the configuration surface as
// functional options.
//
// Features:
//
//   - **Bounded open slots**: at most MaxOpenNotes notes are open at once (default 4).
//   - **Single editing target**: one note at a time receives edit input.
//   - **Layered id generation**: crypto/rand UUIDs, a host-provided source, or a
//     pseudo-random fallback, chosen by a capability probe.
//   - **Events**: Store.Watch streams changes; pkg/adapters/lifecycle bridges them
//     into a lifecycle.Source.
//
// Usage:
//
//	store, err := jotter.New(
//		jotter.WithMaxOpenNotes(4),
//		jotter.WithLogger(logger),
//	)
//	defer store.Close()
//
//	id := store.AddNote("body", "Title")
//	store.OpenNote(id)
package jotter
