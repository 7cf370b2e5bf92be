// Package derive answers read-only questions about the ingredient
// collection: what is expiring soon, what needs a ripeness recheck, and
// what is low on stock.
//
// Every function here is a pure function of (snapshot, now). Nothing is
// cached and nothing mutates - callers recompute on every read, so a
// result can never be stale relative to the store. The reference time
// is an explicit parameter, which keeps every date comparison
// deterministic under test.
package derive
