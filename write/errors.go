// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import "github.com/pkg/errors"

// Sentinel errors identifying the taxonomy a caller can match against
// with errors.Is. The wrapped message carries the offending
// property's context.
var (
	// ErrInvalidGraph marks a fatal defect in the input graph: an
	// accessor used in mutually exclusive roles, a buffer with a
	// non-accessor parent, or an unsupported component type
	// encountered while packing.
	ErrInvalidGraph = errors.New("write: invalid graph")

	// ErrUnsupported marks a property variant the writer has no
	// emitter for.
	ErrUnsupported = errors.New("write: unsupported")
)

func fatalInvalidGraph(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidGraph, format, args...)
}

func fatalUnsupported(format string, args ...any) error {
	return errors.Wrapf(ErrUnsupported, format, args...)
}
