package argbind

// Iter is a cursor over the call's value sequence. Reading past the end
// yields undefined, never an error; Index counts pops performed and so
// keeps growing even past the end.
type Iter struct {
	vals []Value
	idx  int
}

func NewIter(vals []Value) *Iter { return &Iter{vals: vals} }

func (it *Iter) Pop() Value {
	v := it.Peek()
	it.idx++
	return v
}

func (it *Iter) Peek() Value {
	if it.idx < len(it.vals) {
		return it.vals[it.idx]
	}
	return Undefined()
}

func (it *Iter) Index() int { return it.idx }
