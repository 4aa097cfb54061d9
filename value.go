package argbind

type Kind int

const (
	KindUndefined Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindDict
	KindFunc
	KindObject
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	case KindFunc:
		return "function"
	case KindObject:
		return "object"
	default:
		return "other"
	}
}

// Value is one dynamically typed unit of a native call. The core only
// reads it; the host owns it for the duration of the call.
type Value struct {
	K Kind

	B bool
	N float64
	S string
	L []Value
	M map[string]Value

	F Func
	O Object
	X any
}

// Func is a borrowed handle to a host callable. It stays valid for the
// duration of the native call unless the host's reference model says
// otherwise.
type Func func(args []Value) (Value, error)

// Object is the payload of an object-kinded Value. Extra capabilities
// (native pointers, coercion) are probed by type assertion:
//
//	Native() (any, *Descriptor)
//	Truthy() bool
//	ToNumber() (float64, error)
//	ToString() (string, error)
type Object interface {
	TypeName() string
}

// Descriptor is an identity token attached to native pointers when the
// host creates them. Two descriptors match only if they are the same
// *Descriptor.
type Descriptor struct {
	Name string
}

func Undefined() Value              { return Value{K: KindUndefined} }
func Bool(v bool) Value             { return Value{K: KindBool, B: v} }
func Number(v float64) Value        { return Value{K: KindNumber, N: v} }
func String(v string) Value         { return Value{K: KindString, S: v} }
func List(v []Value) Value          { return Value{K: KindList, L: v} }
func Dict(v map[string]Value) Value { return Value{K: KindDict, M: v} }
func Fn(v Func) Value               { return Value{K: KindFunc, F: v} }
func Obj(v Object) Value            { return Value{K: KindObject, O: v} }
func Other(v any) Value             { return Value{K: KindOther, X: v} }

func (v Value) IsUndefined() bool { return v.K == KindUndefined }

// NativeObj is a ready-made object payload carrying a native pointer.
type NativeObj struct {
	Name string
	Ptr  any
	Desc *Descriptor
}

func (o *NativeObj) TypeName() string {
	if o.Name != "" {
		return o.Name
	}
	return "native"
}

func (o *NativeObj) Native() (any, *Descriptor) { return o.Ptr, o.Desc }
