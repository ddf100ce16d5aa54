package dynarray

import "reflect"

const (
	// DefaultInitialCapacity is the buffer size of a freshly constructed Array.
	DefaultInitialCapacity = 10

	// DefaultGrowthFactor is the capacity multiplier used when none is given.
	DefaultGrowthFactor = 2.0
)

// Array is a growable, contiguous, ordered sequence of E.
//
// Elements live at buf[0:n]; buf[n:] is unused. len(buf) is the capacity.
// Use the constructors; the zero value has no buffer and a zero growth factor,
// which still works (every insert grows to exactly the required size) but
// does not grow geometrically.
type Array[E any] struct {
	buf    []E
	n      int
	growth float64
}

// New returns an empty Array with DefaultInitialCapacity and DefaultGrowthFactor.
func New[E any]() *Array[E] {
	return NewWithGrowthFactor[E](DefaultGrowthFactor)
}

// NewWithGrowthFactor returns an empty Array that multiplies its capacity by
// g on each growth. g is not validated; see grow for what happens when g*C
// does not exceed C.
func NewWithGrowthFactor[E any](g float64) *Array[E] {
	return &Array[E]{
		buf:    make([]E, DefaultInitialCapacity),
		growth: g,
	}
}

// From returns a new Array holding a copy of items, in order.
//
// Unlike AddSlice, From copies every element, nil or not.
func From[E any](items []E) *Array[E] {
	a := New[E]()
	for _, v := range items {
		a.Add(v)
	}
	return a
}

// Of is the variadic form of From.
func Of[E any](items ...E) *Array[E] { return From(items) }

// Size returns the number of elements.
func (a *Array[E]) Size() int { return a.n }

// IsEmpty reports whether the array holds no elements.
func (a *Array[E]) IsEmpty() bool { return a.n == 0 }

// Capacity returns the length of the backing buffer.
func (a *Array[E]) Capacity() int { return len(a.buf) }

// GrowthFactor returns the capacity multiplier.
func (a *Array[E]) GrowthFactor() float64 { return a.growth }

// Get returns the element at index.
func (a *Array[E]) Get(index int) (E, error) { return a.at("Get", index) }

// at is Get with the failing op named in the error.
func (a *Array[E]) at(op string, index int) (E, error) {
	if index < 0 || index >= a.n {
		var zero E
		return zero, outOfBounds(op, index, a.n)
	}
	return a.buf[index], nil
}

// MustGet returns the element at index or panics with the *IndexError.
func (a *Array[E]) MustGet(index int) E {
	v, err := a.Get(index)
	if err != nil {
		panic(err)
	}
	return v
}

// First returns the element at index 0.
func (a *Array[E]) First() (E, error) {
	if a.IsEmpty() {
		var zero E
		return zero, empty("First")
	}
	return a.buf[0], nil
}

// Last returns the element at index Size()-1.
func (a *Array[E]) Last() (E, error) {
	if a.IsEmpty() {
		var zero E
		return zero, empty("Last")
	}
	return a.buf[a.n-1], nil
}

// SubList returns a new Array with the elements at [start, stop).
//
// It fails if start > stop, start < 0, the array is empty, or stop > Size()-1
// (so the last element can never be included through stop). When
// start == stop the result holds the single element at start.
func (a *Array[E]) SubList(start, stop int) (*Array[E], error) {
	switch {
	case start > stop, start < 0:
		return nil, outOfBounds("SubList", start, a.n)
	case a.IsEmpty(), stop > a.n-1:
		return nil, outOfBounds("SubList", stop, a.n)
	}

	out := New[E]()
	for i := start; i < stop; i++ {
		out.Add(a.buf[i])
	}
	if start == stop {
		out.Add(a.buf[start])
	}
	return out, nil
}

// FindFirst returns the lowest index whose element satisfies pred, or -1.
func (a *Array[E]) FindFirst(pred func(E) bool) int {
	for i := 0; i < a.n; i++ {
		if pred(a.buf[i]) {
			return i
		}
	}
	return -1
}

// FindLast returns the highest index whose element satisfies pred, or -1.
func (a *Array[E]) FindLast(pred func(E) bool) int {
	for i := a.n - 1; i >= 0; i-- {
		if pred(a.buf[i]) {
			return i
		}
	}
	return -1
}

// Set replaces the element at index and returns the previous one.
// It never grows the array.
func (a *Array[E]) Set(index int, v E) (E, error) {
	if index < 0 || index > a.n-1 {
		var zero E
		return zero, outOfBounds("Set", index, a.n)
	}
	old := a.buf[index]
	a.buf[index] = v
	return old, nil
}

// AddFirst inserts v at index 0, shifting every element one slot right.
func (a *Array[E]) AddFirst(v E) {
	a.ensure(a.n + 1)
	a.shiftRight(0)
	a.buf[0] = v
	a.n++
}

// AddLast appends v.
func (a *Array[E]) AddLast(v E) {
	a.ensure(a.n + 1)
	a.buf[a.n] = v
	a.n++
}

// Add is an alias for AddLast.
func (a *Array[E]) Add(v E) { a.AddLast(v) }

// AddAll appends the elements of other in order, stopping at the first nil
// element. The length of other is read once, so a.AddAll(a) doubles a.
func (a *Array[E]) AddAll(other Sequence[E]) {
	k := other.Size()
	if a.n+k > len(a.buf) {
		a.grow(a.n + k)
	}
	for i := 0; i < k; i++ {
		v, err := other.Get(i)
		if err != nil || isNil(v) {
			return
		}
		a.Add(v)
	}
}

// AddSlice appends items in order, stopping at the first nil element.
func (a *Array[E]) AddSlice(items []E) {
	if a.n+len(items) > len(a.buf) {
		a.grow(a.n + len(items))
	}
	for _, v := range items {
		if isNil(v) {
			return
		}
		a.Add(v)
	}
}

// Insert places v at index, shifting [index, Size()) one slot right.
// Valid indexes are 0..Size(); Insert(Size(), v) is Add(v).
func (a *Array[E]) Insert(index int, v E) error {
	if index < 0 || index > a.n {
		return outOfBounds("Insert", index, a.n)
	}
	if index == a.n {
		a.Add(v)
		return nil
	}
	a.ensure(a.n + 1)
	a.shiftRight(index)
	a.buf[index] = v
	a.n++
	return nil
}

// RemoveFirst removes and returns the element at index 0.
func (a *Array[E]) RemoveFirst() (E, error) {
	if a.IsEmpty() {
		var zero E
		return zero, empty("RemoveFirst")
	}
	v := a.buf[0]
	a.shiftLeft(1)
	a.truncateOne()
	return v, nil
}

// RemoveLast removes and returns the last element.
//
// There is no emptiness guard: on an empty array the lookup of index -1
// fails and the error matches ErrOutOfBounds.
func (a *Array[E]) RemoveLast() (E, error) {
	v, err := a.at("RemoveLast", a.n-1)
	if err != nil {
		return v, err
	}
	a.truncateOne()
	return v, nil
}

// RemoveAll sets the length to zero. The buffer and its contents are kept.
func (a *Array[E]) RemoveAll() {
	a.n = 0
}

// RemoveIndex removes and returns the element at index, with the same bounds
// as Get.
func (a *Array[E]) RemoveIndex(index int) (E, error) {
	v, err := a.at("RemoveIndex", index)
	if err != nil {
		return v, err
	}
	a.shiftLeft(index + 1)
	a.truncateOne()
	return v, nil
}

// RemoveFirstMatching removes the first element satisfying pred and returns
// it with true. It returns the zero value and false when nothing matches.
func (a *Array[E]) RemoveFirstMatching(pred func(E) bool) (E, bool) {
	i := a.FindFirst(pred)
	if i == -1 {
		var zero E
		return zero, false
	}
	v, _ := a.RemoveIndex(i)
	return v, true
}

// truncateOne drops the last slot and zeroes it so the buffer does not pin
// a removed value.
func (a *Array[E]) truncateOne() {
	a.n--
	var zero E
	a.buf[a.n] = zero
}

// isNil reports whether v is a nil pointer, interface, map, slice, chan or func.
func isNil[E any](v E) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
