package argbind

import (
	"errors"
	"testing"
)

func wantKind(t *testing.T, err error, kind ErrKind, arg int) {
	t.Helper()
	var ae *ArgError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *ArgError, got %v", err)
	}
	if ae.Kind != kind || ae.Arg != arg {
		t.Fatalf("got kind=%s arg=%d (%v), want kind=%s arg=%d", ae.Kind, ae.Arg, ae, kind, arg)
	}
}

func TestNumberStepExact(t *testing.T) {
	dst := -1.0
	err := NumberStep{Dst: &dst}.Transform(NewIter([]Value{Number(3.25)}))
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if dst != 3.25 {
		t.Fatalf("dst = %v", dst)
	}

	dst = -1
	err = NumberStep{Dst: &dst}.Transform(NewIter([]Value{String("3.25")}))
	wantKind(t, err, ErrType, 0)
	if dst != -1 {
		t.Fatalf("dst written on failure: %v", dst)
	}
}

func TestNumberStepCoerce(t *testing.T) {
	dst := -1.0
	if err := (NumberStep{Dst: &dst, Coerce: true}).Transform(NewIter([]Value{String("2.5")})); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if dst != 2.5 {
		t.Fatalf("dst = %v", dst)
	}

	dst = -1
	err := NumberStep{Dst: &dst, Coerce: true}.Transform(NewIter([]Value{Obj(throwObj{msg: "boom"})}))
	wantKind(t, err, ErrCoerce, 0)
	if dst != -1 {
		t.Fatalf("dst written on coercion failure: %v", dst)
	}
}

func TestNumberStepOptionality(t *testing.T) {
	dst := 1234.567
	if err := (NumberStep{Dst: &dst, Optional: true}).Transform(NewIter(nil)); err != nil {
		t.Fatalf("optional against exhausted: %v", err)
	}
	if dst != 1234.567 {
		t.Fatalf("optional touched dst: %v", dst)
	}

	err := NumberStep{Dst: &dst}.Transform(NewIter([]Value{Undefined()}))
	wantKind(t, err, ErrMissing, 0)
}

func TestBoolStep(t *testing.T) {
	dst := false
	if err := (BoolStep{Dst: &dst}).Transform(NewIter([]Value{Bool(true)})); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if !dst {
		t.Fatalf("dst = %v", dst)
	}

	err := BoolStep{Dst: &dst}.Transform(NewIter([]Value{String("notabool")}))
	wantKind(t, err, ErrType, 0)

	// coercion is truthiness and total over defined values
	dst = true
	if err := (BoolStep{Dst: &dst, Coerce: true}).Transform(NewIter([]Value{Number(0)})); err != nil {
		t.Fatalf("coerce: %v", err)
	}
	if dst {
		t.Fatalf("Truthy(0) stored as true")
	}
	if err := (BoolStep{Dst: &dst, Coerce: true}).Transform(NewIter([]Value{Obj(plainObj{})})); err != nil {
		t.Fatalf("coerce obj: %v", err)
	}
	if !dst {
		t.Fatalf("objects are truthy")
	}
}

func TestStringStep(t *testing.T) {
	dst := "sentinel"
	if err := (StringStep{Dst: &dst, Cap: 16}).Transform(NewIter([]Value{String("hi")})); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if dst != "hi" {
		t.Fatalf("dst = %q", dst)
	}

	dst = "sentinel"
	err := StringStep{Dst: &dst, Cap: 4}.Transform(NewIter([]Value{String("too long")}))
	wantKind(t, err, ErrCapacity, 0)
	if dst != "sentinel" {
		t.Fatalf("dst written on capacity failure: %q", dst)
	}

	err = StringStep{Dst: &dst}.Transform(NewIter([]Value{Number(1)}))
	wantKind(t, err, ErrType, 0)

	if err := (StringStep{Dst: &dst, Coerce: true}).Transform(NewIter([]Value{Number(1.5)})); err != nil {
		t.Fatalf("coerce: %v", err)
	}
	if dst != "1.5" {
		t.Fatalf("dst = %q", dst)
	}

	dst = "sentinel"
	err = StringStep{Dst: &dst, Coerce: true, Cap: 2}.Transform(NewIter([]Value{Number(1.5)}))
	wantKind(t, err, ErrCapacity, 0)

	err = StringStep{Dst: &dst, Coerce: true}.Transform(NewIter([]Value{Obj(throwObj{msg: "boom"})}))
	wantKind(t, err, ErrCoerce, 0)
}

func TestFuncStep(t *testing.T) {
	called := false
	fn := Func(func(args []Value) (Value, error) {
		called = true
		return Number(float64(len(args))), nil
	})

	var dst Func
	if err := (FuncStep{Dst: &dst}).Transform(NewIter([]Value{Fn(fn)})); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if dst == nil {
		t.Fatalf("no handle stored")
	}
	res, err := dst([]Value{Number(1), Number(2)})
	if err != nil || !called || res.N != 2 {
		t.Fatalf("stored handle broken: %v %v", res, err)
	}

	err = FuncStep{Dst: &dst}.Transform(NewIter([]Value{String("f")}))
	wantKind(t, err, ErrType, 0)
}

func TestPointerStep(t *testing.T) {
	type conn struct{ id int }
	desc := &Descriptor{Name: "conn"}
	other := &Descriptor{Name: "conn"} // same name, different identity
	c := &conn{id: 9}

	var dst any
	obj := Obj(&NativeObj{Name: "conn", Ptr: c, Desc: desc})
	if err := (PointerStep{Dst: &dst, Desc: desc}).Transform(NewIter([]Value{obj})); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if got, ok := dst.(*conn); !ok || got.id != 9 {
		t.Fatalf("dst = %#v", dst)
	}

	dst = nil
	err := PointerStep{Dst: &dst, Desc: other}.Transform(NewIter([]Value{obj}))
	wantKind(t, err, ErrPointer, 0)
	if dst != nil {
		t.Fatalf("dst written on descriptor mismatch")
	}

	err = PointerStep{Dst: &dst, Desc: desc}.Transform(NewIter([]Value{Obj(plainObj{})}))
	wantKind(t, err, ErrPointer, 0)

	err = PointerStep{Dst: &dst, Desc: desc}.Transform(NewIter([]Value{Number(1)}))
	wantKind(t, err, ErrType, 0)

	if err := (PointerStep{Dst: &dst, Desc: desc, Optional: true}).Transform(NewIter(nil)); err != nil {
		t.Fatalf("optional: %v", err)
	}
}

func TestIgnoreStep(t *testing.T) {
	it := NewIter([]Value{String("this")})
	if err := (IgnoreStep{}).Transform(it); err != nil {
		t.Fatalf("ignore: %v", err)
	}
	if it.Index() != 1 {
		t.Fatalf("ignore consumed %d values", it.Index())
	}
	// exhausted sequences are fine too
	if err := (IgnoreStep{}).Transform(it); err != nil {
		t.Fatalf("ignore past end: %v", err)
	}
}

func TestListStep(t *testing.T) {
	var dst []Value
	in := List([]Value{Number(1), Number(2)})
	if err := (ListStep{Dst: &dst}).Transform(NewIter([]Value{in})); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if len(dst) != 2 {
		t.Fatalf("dst = %v", dst)
	}

	err := ListStep{Dst: &dst, Max: 1}.Transform(NewIter([]Value{in}))
	wantKind(t, err, ErrCapacity, 0)

	err = ListStep{Dst: &dst}.Transform(NewIter([]Value{Dict(nil)}))
	wantKind(t, err, ErrType, 0)
}

func TestDictStep(t *testing.T) {
	var dst map[string]Value
	in := Dict(map[string]Value{"a": Number(1), "b": Number(2)})
	if err := (DictStep{Dst: &dst}).Transform(NewIter([]Value{in})); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if len(dst) != 2 {
		t.Fatalf("dst = %v", dst)
	}

	err := DictStep{Dst: &dst, Max: 1}.Transform(NewIter([]Value{in}))
	wantKind(t, err, ErrCapacity, 0)

	err = DictStep{Dst: &dst}.Transform(NewIter([]Value{List(nil)}))
	wantKind(t, err, ErrType, 0)
}
