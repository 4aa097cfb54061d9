package argbind

import "fmt"

// Run executes steps in order against it, returning the first failure
// verbatim. Destinations written by steps before the failing one keep
// their values; there is no rollback.
func Run(it *Iter, steps ...Step) error {
	for _, s := range steps {
		if err := s.Transform(it); err != nil {
			return err
		}
	}
	return nil
}

// RunThisAndArgs runs steps over the this value followed by args.
func RunThisAndArgs(this Value, args []Value, steps ...Step) error {
	seq := make([]Value, 0, len(args)+1)
	seq = append(seq, this)
	seq = append(seq, args...)
	return Run(NewIter(seq), steps...)
}

// RunArgs runs steps over args alone.
func RunArgs(args []Value, steps ...Step) error {
	return Run(NewIter(args), steps...)
}

// CheckCount is an up-front arity check for handlers that want one
// before binding. sig names the function in the error message.
func CheckCount(args []Value, want int, sig string) error {
	if len(args) != want {
		return fmt.Errorf("%s expects %d args, got %d", sig, want, len(args))
	}
	return nil
}

func CheckCountRange(args []Value, min, max int, sig string) error {
	if len(args) < min || len(args) > max {
		return fmt.Errorf("%s expects %d-%d args, got %d", sig, min, max, len(args))
	}
	return nil
}
