package termgrid

import "github.com/unilibs/uniwidth"

// cellWidth returns the rendered display width of a cell: the width of its
// extension cluster when it has one (the sum of each code point's width,
// per spec.md §4.6 step 1), otherwise the width of its primary code point.
func cellWidth(c Cell) int {
	if c.hasCluster() {
		return uniwidth.StringWidth(string(c.Ech))
	}
	return uniwidth.RuneWidth(c.Ch)
}
