// Package neserr defines the error kinds the emulator core recognizes.
//
// CartridgeFormat is a normal, recoverable error returned from loading:
// bad ROMs are expected input and callers are meant to check it with
// errors.Is. BusAddressOutOfRange and OpcodeNotImplemented are defect
// classes: the core panics with them rather than returning them,
// because a guarded PRG read past the cartridge image or a missing
// opcode-table entry means the emulator itself is wrong, not the ROM.
package neserr

import "fmt"

// Kind identifies which of the three error classes a Error is.
type Kind int

const (
	CartridgeFormat Kind = iota
	BusAddressOutOfRange
	OpcodeNotImplemented
)

func (k Kind) String() string {
	switch k {
	case CartridgeFormat:
		return "cartridge format"
	case BusAddressOutOfRange:
		return "bus address out of range"
	case OpcodeNotImplemented:
		return "opcode not implemented"
	default:
		return "unknown"
	}
}

// Error is a typed error carrying one of the three recognized kinds.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error with the same Kind, so
// callers can write errors.Is(err, neserr.New(neserr.CartridgeFormat, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New constructs an Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap constructs an Error of the given kind wrapping a cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}
