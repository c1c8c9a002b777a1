package Trees

import (
	"fmt"
	"io"
	"strings"
)

func (u *base[T, S]) _Print(w io.Writer, c *node[T, S], margin int) {
	fmt.Fprint(w, strings.Repeat("-", margin))
	if c == nil {
		fmt.Fprintln(w, " nil")
		return
	}
	fmt.Fprintf(w, "[ %v ] %d|%d\n", c.v, c.lc, c.rc)
	u._Print(w, c.l, margin+3)
	u._Print(w, c.r, margin+3)
}

// Print the tree to w in preorder, one node per line, indented by depth. Each
// line shows the value followed by the left and right subtree sizes. Debug
// only; the format isn't stable.
func (u *base[T, S]) Print(w io.Writer) {
	u._Print(w, u.root, 0)
}

// PrintInOrder writes the elements to w in ascending order, one per line.
func (u *base[T, S]) PrintInOrder(w io.Writer) {
	u.InOrder(func(v T) bool {
		_, err := fmt.Fprintln(w, v)
		return err == nil
	})
}
