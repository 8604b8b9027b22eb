package score

import (
	"github.com/pkg/errors"
)

// Status is the taxonomy of observable failure modes (spec.md §6/§7). It
// is carried as the cause of a pkg/errors-wrapped error so callers get both a
// stack trace (for logs) and a coarse status they can branch on.
type Status int

const (
	// OK is never returned as an error; it exists so Status has a
	// documented zero-value meaning.
	OK Status = iota
	InvalidParam
	NotFound
	NoMemory
	NotSupported
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case InvalidParam:
		return "InvalidParam"
	case NotFound:
		return "NotFound"
	case NoMemory:
		return "NoMemory"
	case NotSupported:
		return "NotSupported"
	default:
		return "Unknown"
	}
}

func (s Status) Error() string { return s.String() }

// Is reports whether err's taxonomy code, recovered via StatusOf, is s.
func (s Status) Is(err error) bool { return StatusOf(err) == s }

// statusErr wraps a Status with a message, via pkg/errors so the stack at
// the call site is preserved for logging.
func statusErr(s Status, format string, args ...interface{}) error {
	return errors.Wrapf(s, format, args...)
}

func errInvalidParam(format string, args ...interface{}) error {
	return statusErr(InvalidParam, format, args...)
}

func errNotFound(format string, args ...interface{}) error {
	return statusErr(NotFound, format, args...)
}

// StatusOf unwraps err (following pkg/errors causer chains) to the
// taxonomy code it was built from, or OK if err is nil, or NotSupported
// if err does not carry one of this package's Status values (forwarded
// unchanged from a higher layer per spec.md §7).
func StatusOf(err error) Status {
	if err == nil {
		return OK
	}
	type causer interface {
		Cause() error
	}
	for {
		if s, ok := err.(Status); ok {
			return s
		}
		c, ok := err.(causer)
		if !ok {
			return NotSupported
		}
		err = c.Cause()
	}
}
