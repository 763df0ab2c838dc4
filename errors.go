package htmljsx

import (
	"fmt"

	"github.com/livefir/htmljsx/internal/builder"
)

// StructuralError is returned when the fragment contains a node kind that
// JSX cannot represent, such as a document type declaration.
type StructuralError = builder.StructuralError

// ErrMaxDepth is returned when elements nest deeper than the configured
// limit. Check for it with errors.Is.
var ErrMaxDepth = builder.ErrMaxDepth

// SerializationError is returned when the converted tree cannot be printed.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to print JSX: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
