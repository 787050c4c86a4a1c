package schema

import "fmt"

// ValidationError describes the first violation found in a data tree.
// It is the only error type returned by the engine.
type ValidationError struct {
	Path   string // Dotted path of the offending field, empty at the root
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
	Err    error  // Underlying predicate or decoder error, if any
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("field %q: %s", e.Path, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Errorf builds a ValidationError with a formatted reason.
// Predicates may return it to control the reported message exactly.
func Errorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// at returns a copy of err anchored at path, unless err already has one.
func at(err *ValidationError, path string, value any) *ValidationError {
	out := *err
	if out.Path == "" {
		out.Path = path
	}
	if out.Value == nil {
		out.Value = value
	}
	return &out
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}
