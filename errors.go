package extprot

import (
	"errors"
	"fmt"
)

// Sentinel error kinds raised by the core. Callers compare with errors.Is;
// none of these is retried by the runtime itself.
var (
	ErrBadWireType           = errors.New("extprot: bad wire type")
	ErrUnknownTag            = errors.New("extprot: unknown constructor tag")
	ErrOverflow              = errors.New("extprot: integer overflow")
	ErrEndOfInput            = errors.New("extprot: end of input")
	ErrMissingFieldNoDefault = errors.New("extprot: missing field has no default")
	ErrDepthExceeded         = errors.New("extprot: recursion depth exceeded")
	ErrInvalidVersion        = errors.New("extprot: invalid version")
	ErrExtraDataAfterValue   = errors.New("extprot: extra data after value")
)

// WrongProtocolVersionError is raised by the versioning layer when a reader
// encounters a version index it has no codec for.
type WrongProtocolVersionError struct {
	MaxKnown int
	Found    int
}

func (e *WrongProtocolVersionError) Error() string {
	return fmt.Sprintf("extprot: wrong protocol version: found %d, max known %d", e.Found, e.MaxKnown)
}

// CodecError annotates a sentinel error with the decode path (the sequence
// of tuple/record field positions and sum tags taken to reach the failure)
// that produced it, corresponding to the "path" parameter of §4.3.
type CodecError struct {
	Path []string
	Err  error
}

func (e *CodecError) Error() string {
	if len(e.Path) == 0 {
		return e.Err.Error()
	}
	s := e.Err.Error() + " at "
	for i, p := range e.Path {
		if i > 0 {
			s += "."
		}
		s += p
	}
	return s
}

func (e *CodecError) Unwrap() error { return e.Err }

// WrapPath returns err annotated with path if err is non-nil and path is
// non-empty, otherwise err unchanged. An err that is already a *CodecError
// is returned as-is: it was annotated at the deeper decode level where it
// actually occurred, and that path is the more specific one.
func WrapPath(err error, path []string) error {
	if err == nil || len(path) == 0 {
		return err
	}
	if _, already := err.(*CodecError); already {
		return err
	}
	cp := make([]string, len(path))
	copy(cp, path)
	return &CodecError{Path: cp, Err: err}
}
