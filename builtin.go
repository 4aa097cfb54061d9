package argbind

// NumberStep binds one numeric argument into Dst.
type NumberStep struct {
	Dst      *float64
	Coerce   bool
	Optional bool
}

func (s NumberStep) Transform(it *Iter) error {
	v, arg, skip, err := take(it, s.Optional)
	if err != nil || skip {
		return err
	}
	if !s.Coerce {
		if v.K != KindNumber {
			return argErr(ErrType, arg, "type mismatch: expected number, got %s", v.K)
		}
		*s.Dst = v.N
		return nil
	}
	n, err := ToNumber(v)
	if err != nil {
		return argErr(ErrCoerce, arg, "%v", err)
	}
	*s.Dst = n
	return nil
}

// BoolStep binds one boolean argument into Dst. With Coerce set it uses
// truthiness, which cannot raise.
type BoolStep struct {
	Dst      *bool
	Coerce   bool
	Optional bool
}

func (s BoolStep) Transform(it *Iter) error {
	v, arg, skip, err := take(it, s.Optional)
	if err != nil || skip {
		return err
	}
	if !s.Coerce && v.K != KindBool {
		return argErr(ErrType, arg, "type mismatch: expected bool, got %s", v.K)
	}
	if s.Coerce {
		*s.Dst = Truthy(v)
	} else {
		*s.Dst = v.B
	}
	return nil
}

// StringStep binds one string argument into Dst. Cap > 0 declares the
// destination capacity in bytes; a longer string fails the step rather
// than being truncated.
type StringStep struct {
	Dst      *string
	Cap      int
	Coerce   bool
	Optional bool
}

func (s StringStep) Transform(it *Iter) error {
	v, arg, skip, err := take(it, s.Optional)
	if err != nil || skip {
		return err
	}
	var str string
	if s.Coerce {
		str, err = ToString(v)
		if err != nil {
			return argErr(ErrCoerce, arg, "%v", err)
		}
	} else {
		if v.K != KindString {
			return argErr(ErrType, arg, "type mismatch: expected string, got %s", v.K)
		}
		str = v.S
	}
	if s.Cap > 0 && len(str) > s.Cap {
		return argErr(ErrCapacity, arg, "string too long: %d bytes exceeds capacity %d", len(str), s.Cap)
	}
	*s.Dst = str
	return nil
}

// FuncStep binds one callable argument into Dst. Callables are never
// coerced; the handle is borrowed for the duration of the call.
type FuncStep struct {
	Dst      *Func
	Optional bool
}

func (s FuncStep) Transform(it *Iter) error {
	v, arg, skip, err := take(it, s.Optional)
	if err != nil || skip {
		return err
	}
	if v.K != KindFunc {
		return argErr(ErrType, arg, "type mismatch: expected function, got %s", v.K)
	}
	*s.Dst = v.F
	return nil
}

// PointerStep binds the native pointer attached to an object argument.
// The object's descriptor must be the same *Descriptor as Desc; objects
// are never coerced into carrying a pointer.
type PointerStep struct {
	Dst      *any
	Desc     *Descriptor
	Optional bool
}

func (s PointerStep) Transform(it *Iter) error {
	v, arg, skip, err := take(it, s.Optional)
	if err != nil || skip {
		return err
	}
	if v.K != KindObject {
		return argErr(ErrType, arg, "type mismatch: expected object, got %s", v.K)
	}
	var carrier interface{ Native() (any, *Descriptor) }
	if v.O != nil {
		carrier, _ = v.O.(interface{ Native() (any, *Descriptor) })
	}
	if carrier == nil {
		return argErr(ErrPointer, arg, "object carries no native pointer, want %s", descName(s.Desc))
	}
	ptr, desc := carrier.Native()
	if desc != s.Desc {
		return argErr(ErrPointer, arg, "native pointer type mismatch: want %s, got %s", descName(s.Desc), descName(desc))
	}
	*s.Dst = ptr
	return nil
}

func descName(d *Descriptor) string {
	if d == nil {
		return "<none>"
	}
	if d.Name == "" {
		return "<unnamed>"
	}
	return d.Name
}

// IgnoreStep consumes exactly one value without validating or storing
// it, typically to skip the this slot.
type IgnoreStep struct{}

func (IgnoreStep) Transform(it *Iter) error {
	it.Pop()
	return nil
}

// ListStep binds one list argument into Dst. Max > 0 rejects longer
// lists. Lists are never coerced.
type ListStep struct {
	Dst      *[]Value
	Max      int
	Optional bool
}

func (s ListStep) Transform(it *Iter) error {
	v, arg, skip, err := take(it, s.Optional)
	if err != nil || skip {
		return err
	}
	if v.K != KindList {
		return argErr(ErrType, arg, "type mismatch: expected list, got %s", v.K)
	}
	if s.Max > 0 && len(v.L) > s.Max {
		return argErr(ErrCapacity, arg, "list too large: %d entries exceeds %d", len(v.L), s.Max)
	}
	*s.Dst = v.L
	return nil
}

// DictStep binds one dict argument into Dst. Max > 0 rejects larger
// dicts. Dicts are never coerced.
type DictStep struct {
	Dst      *map[string]Value
	Max      int
	Optional bool
}

func (s DictStep) Transform(it *Iter) error {
	v, arg, skip, err := take(it, s.Optional)
	if err != nil || skip {
		return err
	}
	if v.K != KindDict {
		return argErr(ErrType, arg, "type mismatch: expected dict, got %s", v.K)
	}
	if s.Max > 0 && len(v.M) > s.Max {
		return argErr(ErrCapacity, arg, "dict too large: %d entries exceeds %d", len(v.M), s.Max)
	}
	*s.Dst = v.M
	return nil
}
