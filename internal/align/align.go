// Package align scores pairwise sequence similarity with a global alignment
// that maximizes the number of aligned identical residues (unit match score,
// free mismatches and gaps).
package align

// Identity returns the global-alignment identity between a and b as a
// percentage in [0,100]: the maximal number of aligned matching positions
// divided by the longer sequence's length. Either input being empty scores 0.
//
// With match=1, mismatch=0 and no gap penalty, the optimal global alignment
// score is exactly the maximal match count, so the DP below computes the
// identity numerator directly without materializing an alignment.
func Identity(a, b string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	matches := maxMatches(a, b)

	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	return float64(matches) / float64(longer) * 100
}

// maxMatches computes the optimal unit-match global alignment score with a
// two-row DP over the shorter sequence.
func maxMatches(a, b string) int {
	// Keep the DP rows sized by the shorter sequence.
	if len(b) > len(a) {
		a, b = b, a
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			best := prev[j] // gap in b
			if curr[j-1] > best {
				best = curr[j-1] // gap in a
			}
			diag := prev[j-1]
			if a[i-1] == b[j-1] {
				diag++
			}
			if diag > best {
				best = diag
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
