//go:build !grapheme

package termgrid

import "errors"

var errNoGraphemeSupport = errors.New("grapheme-cluster support not compiled in (build with -tags grapheme)")

// graphemeClustersSupported reports whether this build was compiled with
// the grapheme build tag, per spec.md §9's compile-time feature switch.
func graphemeClustersSupported() bool { return false }

// splitClusters returns each rune of s as its own one-rune cluster without
// grapheme support, so Print places one rune per cell.
func splitClusters(s string) [][]rune {
	out := make([][]rune, 0, len(s))
	for _, r := range s {
		out = append(out, []rune{r})
	}
	return out
}
