// Package types defines the Store interface, entity types, and standard
// errors for the garden habit tracker.
package types
