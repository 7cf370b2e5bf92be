// Package pantry implements the inventory store: the authoritative
// collections of ingredients and grocery items, and the only sanctioned
// mutation operations over them.
//
// ARCHITECTURE:
//
// Single-Writer Store:
// All mutations funnel through one mutex owned by the Store. Mutators
// run to completion under the lock, so no reader can observe a move
// half-applied (an item absent from both grocery lists, or present in
// both). Accessors return copies; callers never alias internal slices.
//
// Mutation Flow:
//  1. Mutator validates its input (blank names are rejected).
//  2. In-memory collections are updated first - they are the single
//     source of truth for the rest of the session.
//  3. The owning collection's snapshot is rewritten in full through the
//     injected SnapshotStore. A failed save returns a Persistence-kind
//     error while the in-memory state stays authoritative.
//
// Id-keyed mutators are silent no-ops when the id does not exist. That
// is a documented idempotence guarantee, not an error: the caller holds
// the only authoritative reference to the target id, so a miss means a
// retry of work already done.
//
// Derived views (expiring soon, ripeness recheck, low stock) live in
// package derive and never mutate; the store never computes time-based
// views. The Clock and IDGenerator collaborators are injected so tests
// can pin time and identity.
package pantry
