// Package model defines the data structures shared across filedbg's
// transformer, runtime, and CLI layers.
package model

// Path represents a file system path.
type Path string

// File pairs a path with a content fingerprint, used to detect when a
// staged copy is stale relative to its origin.
type File struct {
	Path Path
	Hash string
}
