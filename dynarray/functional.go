package dynarray

import (
	"iter"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// ToSlice returns a copy of the elements in order. It is never nil.
func (a *Array[E]) ToSlice() []E {
	if a.IsEmpty() {
		return []E{}
	}
	return slices.Clone(a.buf[:a.n])
}

// ForEach calls fn on every element in index order.
func (a *Array[E]) ForEach(fn func(E)) {
	for i := 0; i < a.n; i++ {
		fn(a.buf[i])
	}
}

// All yields (index, element) pairs in order.
func (a *Array[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}

// Values yields the elements in order.
func (a *Array[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(a.buf[i]) {
				return
			}
		}
	}
}

// Join returns a new Array with the elements of a followed by those of other.
// Neither input is modified and every element is copied, nil or not.
func (a *Array[E]) Join(other Sequence[E]) *Array[E] {
	out := New[E]()
	for i := 0; i < a.n; i++ {
		out.Add(a.buf[i])
	}
	for i, k := 0, other.Size(); i < k; i++ {
		v, err := other.Get(i)
		if err != nil {
			break
		}
		out.Add(v)
	}
	return out
}

// Select returns a new Array with the elements for which pred returns true.
func (a *Array[E]) Select(pred func(E) bool) *Array[E] {
	out := New[E]()
	for i := 0; i < a.n; i++ {
		if pred(a.buf[i]) {
			out.Add(a.buf[i])
		}
	}
	return out
}

// Reject returns a new Array with the elements for which pred returns true.
//
// The predicate is not negated: Reject(pred) and Select(pred) return the same
// elements. Negate pred yourself to drop matches.
func (a *Array[E]) Reject(pred func(E) bool) *Array[E] {
	out := New[E]()
	for i := 0; i < a.n; i++ {
		if pred(a.buf[i]) {
			out.Add(a.buf[i])
		}
	}
	return out
}

// Map returns a new Array of fn(e) for each element e of a, in order.
func Map[E, T any](a *Array[E], fn func(E) T) *Array[T] {
	out := New[T]()
	for i := 0; i < a.n; i++ {
		out.Add(fn(a.buf[i]))
	}
	return out
}

// Accumulate folds fn over a from left to right, starting at initial.
//
// Example:
//
//	total := dynarray.Accumulate(staff, func(sum int, e Employee) int { return sum + e.Salary }, 0)
func Accumulate[E, T any](a *Array[E], fn func(T, E) T, initial T) T {
	acc := initial
	for i := 0; i < a.n; i++ {
		acc = fn(acc, a.buf[i])
	}
	return acc
}

// Number is the element type set accepted by Sum.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds every element of a. An empty array sums to zero.
func Sum[E Number](a *Array[E]) E {
	var zero E
	return Accumulate(a, func(acc, e E) E { return acc + e }, zero)
}
