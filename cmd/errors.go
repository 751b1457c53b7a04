package cmd

import "errors"

// ErrUsage is wrapped into any error returned from argument validation,
// letting Execute distinguish a usage mistake (exit 2, spec.md §6) from
// an I/O or transform failure (exit 1).
var ErrUsage = errors.New("usage error")
