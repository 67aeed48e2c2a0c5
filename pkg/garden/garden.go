// Package garden holds module-level metadata shared by the library and CLI.
package garden

// Version is the semantic version of the garden module.
const Version = "0.1.0"
