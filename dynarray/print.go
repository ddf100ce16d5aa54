package dynarray

import (
	"fmt"
	"io"
	"strconv"
)

// PrintAll writes each element on its own line, in index order, using the
// default fmt formatting. It stops at the first write error.
func (a *Array[E]) PrintAll(w io.Writer) error {
	for i := 0; i < a.n; i++ {
		if _, err := fmt.Fprintln(w, a.buf[i]); err != nil {
			return err
		}
	}
	return nil
}

// String returns a one-line summary such as "Growth Factor: 2. Size: 3.".
func (a *Array[E]) String() string {
	return "Growth Factor: " + strconv.FormatFloat(a.growth, 'f', -1, 64) +
		". Size: " + strconv.Itoa(a.n) + "."
}
