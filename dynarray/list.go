package dynarray

import (
	"io"
	"iter"
)

// Sequence is the read-only view AddAll and Join accept.
//
// *Array[E] implements it, but any indexed type with a length works.
type Sequence[E any] interface {
	Size() int
	Get(index int) (E, error)
}

// List is the full contract implemented by *Array[E].
//
// Accept List (or the narrower Sequence) in your own code so an alternative
// implementation can be substituted without depending on *Array.
type List[E any] interface {
	Sequence[E]

	IsEmpty() bool
	First() (E, error)
	Last() (E, error)
	SubList(start, stop int) (*Array[E], error)
	FindFirst(pred func(E) bool) int
	FindLast(pred func(E) bool) int

	Set(index int, v E) (E, error)
	AddFirst(v E)
	AddLast(v E)
	Add(v E)
	AddAll(other Sequence[E])
	AddSlice(items []E)
	Insert(index int, v E) error

	RemoveFirst() (E, error)
	RemoveLast() (E, error)
	RemoveAll()
	RemoveIndex(index int) (E, error)
	RemoveFirstMatching(pred func(E) bool) (E, bool)

	ToSlice() []E
	ForEach(fn func(E))
	All() iter.Seq2[int, E]
	Values() iter.Seq[E]
	Join(other Sequence[E]) *Array[E]
	Select(pred func(E) bool) *Array[E]
	Reject(pred func(E) bool) *Array[E]

	PrintAll(w io.Writer) error
	String() string
}

var _ List[int] = (*Array[int])(nil)
