// Package engine implements the habit-completion and progression rules on
// top of a Store: the completed-today ledger, the XP award transactor, the
// dashboard snapshot aggregator, the focal-plant selector, and the
// completion workflow that ties them together.
//
// The engine never patches derived state in place. After any applied
// completion, callers re-load a fresh Snapshot; the store is the single
// source of truth for XP totals and completion records.
package engine
