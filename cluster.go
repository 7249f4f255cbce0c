//go:build grapheme

package termgrid

import (
	"errors"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

var errNoGraphemeSupport = errors.New("grapheme-cluster support disabled")

// graphemeClustersSupported reports whether this build was compiled with
// the grapheme build tag, per spec.md §9's compile-time feature switch.
func graphemeClustersSupported() bool { return true }

// splitClusters segments s into grapheme clusters, each returned as its
// rune slice, for callers building setCluster input from a string
// (e.g. Print). Passthrough only — no normalization, per spec.md's
// Non-goals.
func splitClusters(s string) [][]rune {
	var out [][]rune
	tokens := graphemes.FromString(s)
	for tokens.Next() {
		out = append(out, []rune(tokens.Value()))
	}
	return out
}
