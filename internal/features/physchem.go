package features

import (
	"fmt"
	"math"
	"strings"

	"github.com/hemolab/peptox/internal/peptide"
)

// physicochemical computes the 6-value property block:
// molecular weight, net charge at pH 7, isoelectric point, aromaticity,
// instability index, GRAVY. Sequence must be uppercase over the standard
// alphabet and non-empty; anything else is an error so the extractor can
// apply its zero-substitution policy.
func physicochemical(seq string) ([6]float64, error) {
	var out [6]float64

	if len(seq) == 0 {
		return out, fmt.Errorf("empty sequence")
	}
	if !peptide.IsStandard(seq) {
		return out, fmt.Errorf("non-standard residue in %q", truncate(seq, 20))
	}

	out[0] = molecularWeight(seq)
	out[1] = chargeAtPH(seq, 7.0)
	out[2] = isoelectricPoint(seq)
	out[3] = aromaticity(seq)
	out[4] = instabilityIndex(seq)
	out[5] = gravy(seq)

	for _, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return [6]float64{}, fmt.Errorf("non-finite property for %q", truncate(seq, 20))
		}
	}
	return out, nil
}

func molecularWeight(seq string) float64 {
	mass := waterMass
	for i := 0; i < len(seq); i++ {
		mass += residueMass[seq[i]]
	}
	return mass
}

// chargeAtPH evaluates the Henderson-Hasselbalch net charge of the peptide,
// summing the N-terminus and basic side chains against the C-terminus and
// acidic side chains.
func chargeAtPH(seq string, ph float64) float64 {
	positive := func(pk float64, n float64) float64 {
		return n / (1.0 + math.Pow(10, ph-pk))
	}
	negative := func(pk float64, n float64) float64 {
		return n / (1.0 + math.Pow(10, pk-ph))
	}

	charge := positive(pkNTerm, 1) - negative(pkCTerm, 1)
	for aa, pk := range basicPK {
		if n := strings.Count(seq, string(aa)); n > 0 {
			charge += positive(pk, float64(n))
		}
	}
	for aa, pk := range acidicPK {
		if n := strings.Count(seq, string(aa)); n > 0 {
			charge -= negative(pk, float64(n))
		}
	}
	return charge
}

// isoelectricPoint finds the pH where the net charge crosses zero by
// bisection over pH 0-14. Charge is strictly decreasing in pH, so the
// bracket always narrows onto the root.
func isoelectricPoint(seq string) float64 {
	lo, hi := 0.0, 14.0
	for hi-lo > 0.001 {
		mid := (lo + hi) / 2
		if chargeAtPH(seq, mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func aromaticity(seq string) float64 {
	n := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'F', 'W', 'Y':
			n++
		}
	}
	return float64(n) / float64(len(seq))
}

func instabilityIndex(seq string) float64 {
	if len(seq) < 2 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(seq)-1; i++ {
		sum += diwv[seq[i]][seq[i+1]]
	}
	return 10.0 / float64(len(seq)-1) * sum
}

func gravy(seq string) float64 {
	sum := 0.0
	for i := 0; i < len(seq); i++ {
		sum += kyteDoolittle[seq[i]]
	}
	return sum / float64(len(seq))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
