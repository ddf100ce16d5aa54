// Package dynarray is the root of a small generic growable-array library.
//
// The repository is organised as:
//
//   - dynarray: the Array[E] container (contiguous buffer, geometric growth)
//     together with its List[E] / Sequence[E] interfaces and functional helpers.
//   - examples: shared example models.
//   - examples/v1: a runnable walkthrough of the whole API.
//
// The container is single-threaded by contract. It never shares its backing
// buffer: every operation that returns a new array allocates a fresh one.
//
// Import
//
//	"github.com/sghaida/dynarray/dynarray"
package dynarray
