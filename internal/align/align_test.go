package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityIdentical(t *testing.T) {
	assert.Equal(t, 100.0, Identity("KLAKLAK", "KLAKLAK"))
	assert.Equal(t, 100.0, Identity("A", "A"))
}

func TestIdentityEmpty(t *testing.T) {
	assert.Zero(t, Identity("", "KLAK"))
	assert.Zero(t, Identity("KLAK", ""))
	assert.Zero(t, Identity("", ""))
}

func TestIdentitySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"KLAKLAKKLAKLAK", "KLAKLAKKLAKLAG"},
		{"GIGAVLKVL", "GIGAV"},
		{"WWWW", "KKKK"},
	}
	for _, p := range pairs {
		assert.Equal(t, Identity(p[0], p[1]), Identity(p[1], p[0]),
			"%q vs %q", p[0], p[1])
	}
}

func TestIdentityValues(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		// One substitution in a 4-mer: 3 of 4 positions align.
		{"AAAA", "AAAT", 75.0},
		// Prefix: all 4 residues of the short one align, over length 7.
		{"KLAKLAK", "KLAK", 4.0 / 7.0 * 100},
		// Disjoint alphabets never match.
		{"WWWW", "KKKK", 0.0},
		// Gapped alignment recovers all of the shorter sequence.
		{"KLAK", "KLXAK", 80.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Identity(tt.a, tt.b), 1e-9,
			"%q vs %q", tt.a, tt.b)
	}
}

func TestIdentityRange(t *testing.T) {
	sequences := []string{"KLAKLAK", "GIGAVLKVLTTGLPALISWIKRKRQQ", "RWRWRWRW", "A"}
	for _, a := range sequences {
		for _, b := range sequences {
			id := Identity(a, b)
			assert.GreaterOrEqual(t, id, 0.0)
			assert.LessOrEqual(t, id, 100.0)
		}
	}
}

func TestIdentityNearDuplicates(t *testing.T) {
	// 13 of 14 residues align between single-residue variants.
	a := "KLAKLAKKLAKLAK"
	b := "KLAKLAGKLAKLAK"
	assert.InDelta(t, 13.0/14.0*100, Identity(a, b), 1e-9)
}
