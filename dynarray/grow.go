package dynarray

// ensure grows the buffer if need elements would not fit.
func (a *Array[E]) ensure(need int) {
	if need > len(a.buf) {
		a.grow(need)
	}
}

// grow replaces the buffer with one of floor(growth * capacity) slots and
// copies the live elements into its low end.
//
// If that size would not exceed the current capacity (growth <= 1, a zero
// capacity, or a factor small enough to truncate back down) the new size is
// need instead, so the pending insert always has room.
func (a *Array[E]) grow(need int) {
	c := len(a.buf)
	next := int(a.growth * float64(c))
	if next <= c {
		next = need
	}
	buf := make([]E, next)
	for i := 0; i < a.n; i++ {
		buf[i] = a.buf[i]
	}
	a.buf = buf
}

// shiftRight moves [from, n) one slot higher, walking from the top down so
// no element is overwritten before it is moved. The caller guarantees n < cap.
func (a *Array[E]) shiftRight(from int) {
	for i := a.n - 1; i >= from; i-- {
		a.buf[i+1] = a.buf[i]
	}
}

// shiftLeft moves [from, n) one slot lower, walking bottom up. from must be >= 1.
func (a *Array[E]) shiftLeft(from int) {
	for i := from; i < a.n; i++ {
		a.buf[i-1] = a.buf[i]
	}
}
