package usecase

import (
	"math"
	"sort"
	"strings"
)

// TokenSortRatio computes a 0-100 similarity between two strings that is
// invariant to token order: each string's whitespace-delimited tokens are
// sorted and rejoined before distance scoring, so reordered words still score
// highly similar.
func TokenSortRatio(a, b string) int {
	sa := sortTokens(a)
	sb := sortTokens(b)
	if sa == sb {
		return 100
	}

	ra := []rune(sa)
	rb := []rune(sb)
	total := len(ra) + len(rb)
	dist := indelDistance(ra, rb)
	return int(math.Round(100 * (1 - float64(dist)/float64(total))))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// indelDistance is the minimum number of single-rune insertions and deletions
// needed to transform r1 into r2. Uses two rows instead of the full matrix for
// space efficiency.
func indelDistance(r1, r2 []rune) int {
	m := len(r1)
	n := len(r2)
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			if r1[i-1] == r2[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min(
					prev[j]+1, // deletion
					curr[j-1]+1, // insertion
				)
			}
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
