// Package ident generates and validates note identifiers.
//
// A Generator is resolved once at startup by probing the available random
// sources in priority order:
//
//  1. secure: a UUID v4 read from crypto/rand (github.com/google/uuid).
//  2. host: a UUID supplied by the embedding shell through a HostBridge.
//  3. pseudo: a UUID-v4-shaped string assembled from math/rand/v2.
//
// The selected strategy is used for every call. If it fails at call time the
// generator degrades to the next strategy in the chain; the pseudo strategy
// never fails, so Generate always returns a usable identifier.
package ident
