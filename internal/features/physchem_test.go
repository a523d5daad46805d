package features

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemolab/peptox/internal/peptide"
)

func TestMolecularWeight(t *testing.T) {
	// Ala + Gly residues plus one water.
	assert.InDelta(t, 71.0779+57.0513+18.0153, molecularWeight("AG"), 0.001)
	assert.InDelta(t, 57.0513+18.0153, molecularWeight("G"), 0.001)
}

func TestChargeAtPH(t *testing.T) {
	// Lysine-rich peptides are strongly positive at pH 7, aspartate-rich
	// strongly negative.
	assert.Greater(t, chargeAtPH("KKKKK", 7.0), 3.0)
	assert.Less(t, chargeAtPH("DDDDD", 7.0), -3.0)

	// Charge decreases monotonically with pH.
	seq := "KLAKLAKKLAKLAK"
	assert.Greater(t, chargeAtPH(seq, 3.0), chargeAtPH(seq, 7.0))
	assert.Greater(t, chargeAtPH(seq, 7.0), chargeAtPH(seq, 11.0))
}

func TestIsoelectricPoint(t *testing.T) {
	basic := isoelectricPoint("KKKKK")
	acidic := isoelectricPoint("DDDDD")
	assert.Greater(t, basic, 9.0)
	assert.Less(t, acidic, 5.0)

	// Net charge at the pI is approximately zero.
	pi := isoelectricPoint("GIGAVLKVLTTGLPALISWIKRKRQQ")
	assert.InDelta(t, 0.0, chargeAtPH("GIGAVLKVLTTGLPALISWIKRKRQQ", pi), 0.05)
}

func TestAromaticity(t *testing.T) {
	assert.Equal(t, 1.0, aromaticity("FWY"))
	assert.Equal(t, 0.0, aromaticity("KLAK"))
	assert.InDelta(t, 0.25, aromaticity("WAAA"), 1e-12)
}

func TestGravy(t *testing.T) {
	// Kyte-Doolittle: I=4.5 is the most hydrophobic, R=-4.5 the least.
	assert.InDelta(t, 4.5, gravy("III"), 1e-12)
	assert.InDelta(t, -4.5, gravy("RRR"), 1e-12)
	assert.InDelta(t, 0.0, gravy("IR"), 1e-12)
}

func TestInstabilityIndex(t *testing.T) {
	// Single residue has no dipeptides.
	assert.Zero(t, instabilityIndex("K"))

	// II = 10/(L-1) * sum of weights; for "GG" that is one G-G pair.
	assert.InDelta(t, 10*diwv['G']['G'], instabilityIndex("GG"), 1e-9)
}

func TestDIWVTableComplete(t *testing.T) {
	for i := 0; i < len(peptide.Alphabet); i++ {
		row, ok := diwv[peptide.Alphabet[i]]
		require.True(t, ok, "missing row %c", peptide.Alphabet[i])
		require.Len(t, row, 20, "row %c", peptide.Alphabet[i])
		for j := 0; j < len(peptide.Alphabet); j++ {
			_, ok := row[peptide.Alphabet[j]]
			require.True(t, ok, "missing %c%c", peptide.Alphabet[i], peptide.Alphabet[j])
		}
	}
}

func TestResidueTablesComplete(t *testing.T) {
	for i := 0; i < len(peptide.Alphabet); i++ {
		aa := peptide.Alphabet[i]
		assert.Contains(t, residueMass, aa)
		assert.Contains(t, kyteDoolittle, aa)
	}
	assert.Len(t, residueMass, 20)
	assert.Len(t, kyteDoolittle, 20)
}

func TestPhysicochemicalFinite(t *testing.T) {
	sequences := []string{
		"KLAKLAKKLAKLAK",
		"GIGAVLKVLTTGLPALISWIKRKRQQ",
		"GIVEQCCTSICSLYQLENYCN",
		"RRRPRPPYLPRPRPPPFFPPRLPP",
		"A",
	}
	for _, seq := range sequences {
		props, err := physicochemical(seq)
		require.NoError(t, err, "sequence %q", seq)
		for i, v := range props {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0),
				"property %d of %q", i, seq)
		}
	}
}

func TestPhysicochemicalRejectsDegenerate(t *testing.T) {
	_, err := physicochemical("")
	assert.Error(t, err)

	_, err = physicochemical("KLXK")
	assert.Error(t, err)
}
