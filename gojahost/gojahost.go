// Package gojahost feeds goja function calls through argbind pipelines.
package gojahost

import (
	"reflect"

	"github.com/dop251/goja"

	"github.com/unkn0wn-root/argbind"
)

// Registry maps Go types the host hands to the script engine onto the
// descriptors argbind uses for native pointer identity checks.
type Registry struct {
	descs map[reflect.Type]*argbind.Descriptor
}

func NewRegistry() *Registry {
	return &Registry{descs: map[reflect.Type]*argbind.Descriptor{}}
}

// Register associates sample's dynamic type with desc. Values of that
// type exported out of the engine classify as native pointer carriers.
func (r *Registry) Register(sample any, desc *argbind.Descriptor) {
	r.descs[reflect.TypeOf(sample)] = desc
}

func (r *Registry) lookup(v any) *argbind.Descriptor {
	if r == nil || v == nil {
		return nil
	}
	return r.descs[reflect.TypeOf(v)]
}

// FromValue classifies one engine value. Coercion of object values is
// lazy: the returned payload converts through the engine on demand, so
// a throwing valueOf/toString surfaces as a step's coercion failure.
func (r *Registry) FromValue(vm *goja.Runtime, v goja.Value) argbind.Value {
	if v == nil || goja.IsUndefined(v) {
		return argbind.Undefined()
	}
	if goja.IsNull(v) {
		return argbind.Other(nil)
	}
	if fn, ok := goja.AssertFunction(v); ok {
		return argbind.Fn(r.wrapFunc(vm, fn))
	}
	switch v.ExportType().Kind() {
	case reflect.Bool:
		return argbind.Bool(v.ToBoolean())
	case reflect.String:
		return argbind.String(v.String())
	case reflect.Int, reflect.Int64, reflect.Float64:
		return argbind.Number(v.ToFloat())
	case reflect.Slice:
		if items, ok := v.Export().([]any); ok {
			out := make([]argbind.Value, 0, len(items))
			for _, it := range items {
				out = append(out, fromExport(it))
			}
			return argbind.List(out)
		}
	}
	exp := v.Export()
	if desc := r.lookup(exp); desc != nil {
		return argbind.Obj(&nativeObject{jsObject: jsObject{v: v}, ptr: exp, desc: desc})
	}
	return argbind.Obj(&jsObject{v: v})
}

// FromCall splits a goja call into the this value and its arguments.
func (r *Registry) FromCall(vm *goja.Runtime, call goja.FunctionCall) (argbind.Value, []argbind.Value) {
	args := make([]argbind.Value, 0, len(call.Arguments))
	for _, a := range call.Arguments {
		args = append(args, r.FromValue(vm, a))
	}
	return r.FromValue(vm, call.This), args
}

// Handler wraps a native function body so that a bind failure is thrown
// as a TypeError at the script call site; the body only runs after bind
// succeeded and the destinations are populated.
func (r *Registry) Handler(
	vm *goja.Runtime,
	bind func(this argbind.Value, args []argbind.Value) error,
	body func(call goja.FunctionCall) goja.Value,
) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		this, args := r.FromCall(vm, call)
		if err := bind(this, args); err != nil {
			Throw(vm, err)
		}
		return body(call)
	}
}

// Throw surfaces err as a thrown TypeError. It does not return.
func Throw(vm *goja.Runtime, err error) {
	panic(vm.NewTypeError("%s", err.Error()))
}

func (r *Registry) wrapFunc(vm *goja.Runtime, fn goja.Callable) argbind.Func {
	return func(args []argbind.Value) (argbind.Value, error) {
		in := make([]goja.Value, 0, len(args))
		for _, a := range args {
			if a.K == argbind.KindUndefined {
				in = append(in, goja.Undefined())
				continue
			}
			in = append(in, vm.ToValue(export(a)))
		}
		out, err := fn(goja.Undefined(), in...)
		if err != nil {
			return argbind.Undefined(), err
		}
		return r.FromValue(vm, out), nil
	}
}

func fromExport(x any) argbind.Value {
	switch t := x.(type) {
	case nil:
		return argbind.Other(nil)
	case bool:
		return argbind.Bool(t)
	case int:
		return argbind.Number(float64(t))
	case int64:
		return argbind.Number(float64(t))
	case float64:
		return argbind.Number(t)
	case string:
		return argbind.String(t)
	case []any:
		out := make([]argbind.Value, 0, len(t))
		for _, it := range t {
			out = append(out, fromExport(it))
		}
		return argbind.List(out)
	case map[string]any:
		out := make(map[string]argbind.Value, len(t))
		for k, it := range t {
			out[k] = fromExport(it)
		}
		return argbind.Dict(out)
	default:
		return argbind.Other(x)
	}
}

func export(v argbind.Value) any {
	switch v.K {
	case argbind.KindBool:
		return v.B
	case argbind.KindNumber:
		return v.N
	case argbind.KindString:
		return v.S
	case argbind.KindList:
		out := make([]any, 0, len(v.L))
		for _, it := range v.L {
			out = append(out, export(it))
		}
		return out
	case argbind.KindDict:
		out := make(map[string]any, len(v.M))
		for k, it := range v.M {
			out[k] = export(it)
		}
		return out
	case argbind.KindObject:
		switch o := v.O.(type) {
		case *nativeObject:
			return o.ptr
		case *jsObject:
			return o.v
		default:
			return v.O
		}
	default:
		return v.X
	}
}

type jsObject struct {
	v goja.Value
}

func (o *jsObject) TypeName() string { return "object" }

func (o *jsObject) ToNumber() (n float64, err error) {
	err = catch(func() { n = o.v.ToFloat() })
	return n, err
}

func (o *jsObject) ToString() (s string, err error) {
	err = catch(func() { s = o.v.String() })
	return s, err
}

type nativeObject struct {
	jsObject
	ptr  any
	desc *argbind.Descriptor
}

func (o *nativeObject) TypeName() string {
	if o.desc != nil && o.desc.Name != "" {
		return o.desc.Name
	}
	return "native"
}

func (o *nativeObject) Native() (any, *argbind.Descriptor) { return o.ptr, o.desc }

// catch runs fn and converts a thrown script exception into an error.
func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ex, ok := r.(*goja.Exception)
			if !ok {
				panic(r)
			}
			err = ex
		}
	}()
	fn()
	return nil
}
