package motif

import "fmt"

// UnknownNameError reports a reference to a name with no definition.
type UnknownNameError struct {
	Name string
	Span Span
}

// NewUnknownNameError builds an UnknownNameError for a reference to name
// at span.
func NewUnknownNameError(name string, span Span) *UnknownNameError {
	return &UnknownNameError{Name: name, Span: span}
}

// Error implements error.
func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown name %q at %v", e.Name, e.Span)
}

// UnboundedNotLastError reports a Sequence whose non-last child has an
// unbounded length, making every sibling after it unreachable.
type UnboundedNotLastError struct {
	Span Span
}

// NewUnboundedNotLastError builds an UnboundedNotLastError attributed to
// the offending child's span.
func NewUnboundedNotLastError(span Span) *UnboundedNotLastError {
	return &UnboundedNotLastError{Span: span}
}

// Error implements error.
func (e *UnboundedNotLastError) Error() string {
	return fmt.Sprintf("unbounded-length sequence element at %v is not the last element", e.Span)
}

// UnfoundedRecursionError reports a strongly-connected component whose
// length-inference system has no pivot in some column and at least one
// all-zero row (the system is underdetermined rather than contradictory).
type UnfoundedRecursionError struct {
	Names []string
	Span  Span
}

// NewUnfoundedRecursionError builds an UnfoundedRecursionError for the
// named mutually-recursive definitions.
func NewUnfoundedRecursionError(names []string, span Span) *UnfoundedRecursionError {
	return &UnfoundedRecursionError{Names: names, Span: span}
}

// Error implements error.
func (e *UnfoundedRecursionError) Error() string {
	return fmt.Sprintf("unfounded recursion among %v at %v", e.Names, e.Span)
}

// NoPublicNamesError reports a program whose public surface is empty.
type NoPublicNamesError struct {
	Span Span
}

// NewNoPublicNamesError builds a NoPublicNamesError attributed to the
// whole-source span.
func NewNoPublicNamesError(span Span) *NoPublicNamesError {
	return &NoPublicNamesError{Span: span}
}

// Error implements error.
func (e *NoPublicNamesError) Error() string {
	return "program has no public names"
}
