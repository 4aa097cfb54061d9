package argbind

import "fmt"

type ErrKind int

const (
	ErrMissing ErrKind = iota
	ErrType
	ErrCoerce
	ErrPointer
	ErrCapacity
)

func (k ErrKind) String() string {
	switch k {
	case ErrMissing:
		return "missing"
	case ErrType:
		return "type"
	case ErrCoerce:
		return "coerce"
	case ErrPointer:
		return "pointer"
	case ErrCapacity:
		return "capacity"
	default:
		return "unknown"
	}
}

// ArgError is a bind failure tied to the argument position it happened
// at. Arg is 0-based over the sequence the pipeline ran on.
type ArgError struct {
	Kind ErrKind
	Arg  int
	Msg  string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("arg %d: %s", e.Arg, e.Msg)
}

func argErr(kind ErrKind, arg int, format string, args ...any) error {
	return &ArgError{Kind: kind, Arg: arg, Msg: fmt.Sprintf(format, args...)}
}
