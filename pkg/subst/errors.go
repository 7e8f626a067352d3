// Package subst provides a custom error type for traversal failures.
package subst

import (
	"fmt"
)

// TraversalError reports an attempt to walk a remaining path segment into a
// value that supports none of the traversable capabilities. It is distinct
// from a path that is merely absent: absent paths resolve to the fallback
// without error.
type TraversalError struct {
	Root interface{}
	Path string
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("traversal error for path '%s' on root %T (%v): path runs into a non-traversable value", e.Path, e.Root, e.Root)
}

// NewTraversalError creates a new traversal error for the given root and path
func NewTraversalError(root interface{}, path string) error {
	return &TraversalError{
		Root: root,
		Path: path,
	}
}
