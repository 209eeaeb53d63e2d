// Package derrors defines the error kinds reported while generating a
// reference document.
package derrors

import (
	"errors"
	"fmt"
)

//lint:file-ignore ST1012 prefixing error values with Err would stutter

var (
	// Usage indicates the command line was malformed, for example the wrong
	// number of positional arguments.
	Usage = errors.New("usage error")
	// Malformed indicates a docstring that does not follow the documentation
	// dialect: a bad entry header, a bad enum value line, or a continuation
	// line with no entry to continue.
	Malformed = errors.New("malformed docstring")
	// EnumMismatch indicates that the values documented for an enumeration
	// differ from its actual members.
	EnumMismatch = errors.New("documented enum values do not match actual members")
	// BadInput indicates that symbol metadata could not be loaded from the
	// input source.
	BadInput = errors.New("bad input")
	// Internal indicates a bug in pydown itself.
	Internal = errors.New("internal error")
)

// Wrap adds context to the error and allows
// unwrapping the result to recover the original error.
//
// Example:
//
//	defer derrors.Wrap(&err, "copy(%s, %s)", dst, src)
func Wrap(errp *error, format string, args ...any) {
	if *errp != nil {
		*errp = fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), *errp)
	}
}

// ExitCode returns the process exit status for err: 0 for nil, 2 for usage
// errors and 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, Usage):
		return 2
	default:
		return 1
	}
}
