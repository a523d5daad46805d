package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemolab/peptox/internal/peptide"
)

func lp(seq string, label peptide.Label, source string) peptide.LabeledPeptide {
	return peptide.LabeledPeptide{Sequence: seq, Label: label, Source: source}
}

func TestMergerFirstSourceWins(t *testing.T) {
	m := NewMerger()

	assert.True(t, m.Add(lp("KLAKLAK", peptide.Toxic, "UniProt_Toxic")))
	assert.False(t, m.Add(lp("KLAKLAK", peptide.Toxic, "DBAASP")))

	toxic := m.Class(peptide.Toxic)
	require.Len(t, toxic, 1)
	assert.Equal(t, "UniProt_Toxic", toxic[0].Source)
	assert.Equal(t, 1, m.Duplicates())
}

func TestMergerClassesIndependent(t *testing.T) {
	m := NewMerger()

	// The same sequence may legitimately appear in both classes.
	assert.True(t, m.Add(lp("KLAKLAK", peptide.Toxic, "a")))
	assert.True(t, m.Add(lp("KLAKLAK", peptide.NonToxic, "b")))

	toxic, nontoxic := m.Counts()
	assert.Equal(t, 1, toxic)
	assert.Equal(t, 1, nontoxic)
}

func TestMergerOrderInvariantSequenceSets(t *testing.T) {
	in := []peptide.LabeledPeptide{
		lp("KLAKLAK", peptide.Toxic, "a"),
		lp("GIGAVLKVL", peptide.Toxic, "b"),
		lp("KLAKLAK", peptide.Toxic, "c"),
		lp("RWRWRWRW", peptide.NonToxic, "a"),
		lp("GWLKKIK", peptide.NonToxic, "c"),
	}
	reversed := make([]peptide.LabeledPeptide, len(in))
	for i, p := range in {
		reversed[len(in)-1-i] = p
	}

	a := NewMerger()
	a.AddAll(in)
	b := NewMerger()
	b.AddAll(reversed)

	// The retained sequence sets match in any insertion order; only the
	// winning source tag is order-dependent.
	assert.Equal(t, seqsOf(a.Class(peptide.Toxic)), seqsOf(b.Class(peptide.Toxic)))
	assert.Equal(t, seqsOf(a.Class(peptide.NonToxic)), seqsOf(b.Class(peptide.NonToxic)))
}

func TestBalanceSubsamples(t *testing.T) {
	m := NewMerger()
	for _, seq := range syntheticSeqs(100, "K") {
		m.Add(lp(seq, peptide.Toxic, "s"))
	}
	for _, seq := range syntheticSeqs(100, "R") {
		m.Add(lp(seq, peptide.NonToxic, "s"))
	}

	m.Balance(10, 42)

	toxic, nontoxic := m.Counts()
	assert.Equal(t, 5, toxic)
	assert.Equal(t, 5, nontoxic)
}

func TestBalanceSeedDeterministic(t *testing.T) {
	build := func() *Merger {
		m := NewMerger()
		for _, seq := range syntheticSeqs(50, "K") {
			m.Add(lp(seq, peptide.Toxic, "s"))
		}
		return m
	}

	a := build()
	a.Balance(20, 7)
	b := build()
	b.Balance(20, 7)

	assert.Equal(t, seqsOf(a.Class(peptide.Toxic)), seqsOf(b.Class(peptide.Toxic)))
}

func TestBalanceShortfallKeepsAll(t *testing.T) {
	m := NewMerger()
	m.Add(lp("KLAKLAK", peptide.Toxic, "s"))
	m.Add(lp("RWRWRWRW", peptide.NonToxic, "s"))

	// Shortfall warns instead of erroring and keeps everything.
	m.Balance(1000, 42)

	toxic, nontoxic := m.Counts()
	assert.Equal(t, 1, toxic)
	assert.Equal(t, 1, nontoxic)
}

func TestSourceDistribution(t *testing.T) {
	m := NewMerger()
	m.Add(lp("KLAKLAK", peptide.Toxic, "a"))
	m.Add(lp("GIGAVLKVL", peptide.Toxic, "a"))
	m.Add(lp("RWRWRWRW", peptide.NonToxic, "b"))

	dist := m.SourceDistribution()
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, dist)
}

func seqsOf(peps []peptide.LabeledPeptide) []string {
	out := make([]string, len(peps))
	for i, p := range peps {
		out[i] = p.Sequence
	}
	return out
}

// syntheticSeqs builds n distinct valid sequences from a residue prefix.
func syntheticSeqs(n int, prefix string) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		tail := []byte{
			byte('A' + i%20),
			byte('A' + (i/20)%20),
		}
		// Map onto the standard alphabet to keep sequences valid.
		alphabet := "ACDEFGHIKLMNPQRSTVWY"
		out[i] = prefix + "LAKLA" + string(alphabet[int(tail[0]-'A')%20]) + string(alphabet[int(tail[1]-'A')%20])
	}
	return out
}
