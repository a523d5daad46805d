package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemolab/peptox/internal/peptide"
)

func openInMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openInMemory(t)
	assert.NotNil(t, s.DB())
}

func TestWriteAndLoadSnapshot(t *testing.T) {
	s := openInMemory(t)

	peps := []peptide.LabeledPeptide{
		{Sequence: "KLAKLAKKLAKLAK", Label: peptide.Toxic, Source: "Sample"},
		{Sequence: "GIGAVLKVLTTGLPALISWIKRKRQQ", Label: peptide.Toxic, Source: "UniProt_Toxic"},
		{Sequence: "RWRWRWRW", Label: peptide.NonToxic, Source: "Sample"},
	}
	require.NoError(t, s.WriteSnapshot("merged", peps))

	got, err := s.LoadSnapshot("merged")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.ElementsMatch(t, peps, got)

	got, err = s.LoadSnapshot("missing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteSnapshotDeduplicates(t *testing.T) {
	s := openInMemory(t)

	peps := []peptide.LabeledPeptide{
		{Sequence: "KLAKLAK", Label: peptide.Toxic, Source: "a"},
		{Sequence: "KLAKLAK", Label: peptide.Toxic, Source: "b"},
	}
	require.NoError(t, s.WriteSnapshot("d", peps))

	got, err := s.LoadSnapshot("d")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Source)
}

func TestWriteSnapshotReplaces(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteSnapshot("d", []peptide.LabeledPeptide{
		{Sequence: "KLAKLAK", Label: peptide.Toxic, Source: "a"},
	}))
	require.NoError(t, s.WriteSnapshot("d", []peptide.LabeledPeptide{
		{Sequence: "RWRWRWRW", Label: peptide.NonToxic, Source: "b"},
	}))

	got, err := s.LoadSnapshot("d")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "RWRWRWRW", got[0].Sequence)
}

func TestSnapshotCounts(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteSnapshot("d", []peptide.LabeledPeptide{
		{Sequence: "KLAKLAK", Label: peptide.Toxic, Source: "a"},
		{Sequence: "GIGAVLKVL", Label: peptide.Toxic, Source: "a"},
		{Sequence: "RWRWRWRW", Label: peptide.NonToxic, Source: "b"},
	}))

	toxic, nontoxic, err := s.SnapshotCounts("d")
	require.NoError(t, err)
	assert.Equal(t, 2, toxic)
	assert.Equal(t, 1, nontoxic)
}

func TestDatasets(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.WriteSnapshot("b", []peptide.LabeledPeptide{
		{Sequence: "KLAKLAK", Label: peptide.Toxic},
	}))
	require.NoError(t, s.WriteSnapshot("a", []peptide.LabeledPeptide{
		{Sequence: "RWRWRWRW", Label: peptide.NonToxic},
	}))

	names, err := s.Datasets()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestRecordAndListRuns(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.RecordRun(RunRecord{
		RunAt: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		Dataset: "merged", Sequences: 120, Features: 27,
		Dipeptide: false, OutputPath: "features.csv",
	}))
	require.NoError(t, s.RecordRun(RunRecord{
		RunAt: time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
		Dataset: "merged", Sequences: 120, Features: 427,
		Dipeptide: true, OutputPath: "features_dpc.csv",
	}))

	runs, err := s.Runs(0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, 427, runs[0].Features)
	assert.True(t, runs[0].Dipeptide)
	assert.Equal(t, 27, runs[1].Features)

	runs, err = s.Runs(1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestRecordRunDefaultsTimestamp(t *testing.T) {
	s := openInMemory(t)

	require.NoError(t, s.RecordRun(RunRecord{Dataset: "d", Sequences: 1, Features: 27}))

	runs, err := s.Runs(0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.False(t, runs[0].RunAt.IsZero())
}
