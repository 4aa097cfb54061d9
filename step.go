package argbind

// Step is one unit of the pipeline: it may consume any number of values
// from the shared iterator and, on success, has already written its
// destination. On failure it must leave the destination untouched.
type Step interface {
	Transform(it *Iter) error
}

// StepFunc adapts a plain function into a Step for custom transforms.
type StepFunc func(it *Iter) error

func (f StepFunc) Transform(it *Iter) error { return f(it) }

// take pops the next value and applies the shared optionality rule:
// undefined succeeds for an optional step (skip=true, no write) and
// fails for a required one. arg is the position the value came from.
func take(it *Iter, optional bool) (v Value, arg int, skip bool, err error) {
	arg = it.Index()
	v = it.Pop()
	if v.K != KindUndefined {
		return v, arg, false, nil
	}
	if optional {
		return v, arg, true, nil
	}
	return v, arg, false, argErr(ErrMissing, arg, "required argument missing")
}
