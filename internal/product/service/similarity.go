package service

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// reusable metric instance; Compare only reads its fields
var lev = metrics.NewLevenshtein()

// ratio is the normalized edit-distance similarity over the full strings.
func ratio(a, b string) float64 {
	return strutil.Similarity(a, b, lev)
}

// partialRatio slides the shorter string over the longer one and keeps the
// best window, so a query contained in a longer candidate still scores high.
func partialRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	short, long := ra, rb
	if len(rb) < len(ra) {
		short, long = rb, ra
	}
	if len(short) == 0 {
		if len(long) == 0 {
			return 1
		}
		return 0
	}
	if strings.Contains(string(long), string(short)) {
		return 1
	}
	best := 0.0
	s := string(short)
	for i := 0; i+len(short) <= len(long); i++ {
		if v := ratio(s, string(long[i:i+len(short)])); v > best {
			best = v
		}
	}
	return best
}

// tokenSort puts whitespace-delimited tokens in lexicographic order, making
// the comparison insensitive to word order.
func tokenSort(s string) string {
	f := strings.Fields(s)
	sort.Strings(f)
	return strings.Join(f, " ")
}

func tokenSortRatio(a, b string) float64 {
	return ratio(tokenSort(a), tokenSort(b))
}

// Score returns a [0,1] similarity between a trimmed query and a candidate
// name. The best of three measures wins: one strong signal (word reorder,
// truncation, or plain edit distance) is enough to rank a candidate highly.
func Score(query, candidate string) float64 {
	best := ratio(query, candidate)
	if v := partialRatio(query, candidate); v > best {
		best = v
	}
	if v := tokenSortRatio(query, candidate); v > best {
		best = v
	}
	return best
}
