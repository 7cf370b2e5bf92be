// Package store provides SQLite-backed persistence for collection
// snapshots.
//
// The store is a deliberately dumb key-value blob store: one row per
// collection key, holding that collection serialized as a JSON array.
// There is no incremental or delta persistence - every save rewrites
// the whole value, and every load reads it back in full. All schema
// knowledge lives with the caller (package pantry); this package never
// inspects the blobs it stores.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - single connection: SQLite allows one writer at a time
package store
