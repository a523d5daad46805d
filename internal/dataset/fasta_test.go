package dataset

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemolab/peptox/internal/peptide"
)

func TestFASTARoundTrip(t *testing.T) {
	in := []peptide.LabeledPeptide{
		{Sequence: "KLAKLAKKLAKLAK", Label: peptide.Toxic, Source: "UniProt_Toxic"},
		{Sequence: "GIGAVLKVLTTGLPALISWIKRKRQQ", Label: peptide.Toxic, Source: "DBAASP"},
		{Sequence: "KWKKWKKWKKWK", Label: peptide.Toxic, Source: "Synthetic"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteFASTA(&buf, in, peptide.Toxic))

	out, err := ReadFASTA(&buf, peptide.NonToxic)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestWriteFASTAFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFASTA(&buf, []peptide.LabeledPeptide{
		{Sequence: "KLAKLAK", Label: peptide.Toxic, Source: "DRAMP"},
	}, peptide.Toxic))

	assert.Equal(t, ">toxic_peptide_1|hemolytic|DRAMP\nKLAKLAK\n", buf.String())
}

func TestWriteFASTANonToxicTag(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFASTA(&buf, []peptide.LabeledPeptide{
		{Sequence: "RWRWRWRW", Label: peptide.NonToxic, Source: ""},
	}, peptide.NonToxic))

	assert.Equal(t, ">nontoxic_peptide_1|antimicrobial|unknown\nRWRWRWRW\n", buf.String())
}

func TestReadFASTAHeaderVariants(t *testing.T) {
	input := strings.Join([]string{
		">toxic_nr_1|hemolytic|APD3",
		"KLAKLAK",
		">bare_header",
		"GIGAVLKVL",
		">id|antimicrobial|DRAMP",
		"RWRW",
		"RWRW",
	}, "\n")

	out, err := ReadFASTA(strings.NewReader(input), peptide.Toxic)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, peptide.Toxic, out[0].Label)
	assert.Equal(t, "APD3", out[0].Source)

	// Bare header: fallback label, unknown source.
	assert.Equal(t, peptide.Toxic, out[1].Label)
	assert.Equal(t, "unknown", out[1].Source)

	// Multi-line sequence is joined; class tag overrides the fallback.
	assert.Equal(t, peptide.NonToxic, out[2].Label)
	assert.Equal(t, "RWRWRWRW", out[2].Sequence)
}

func TestReadFASTALowercaseSequence(t *testing.T) {
	out, err := ReadFASTA(strings.NewReader(">x|hemolytic|s\nklaklak\n"), peptide.NonToxic)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "KLAKLAK", out[0].Sequence)
}

func TestReadFASTAFileGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "peptides.fasta.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(">toxic_peptide_1|hemolytic|Original\nKLAKLAKKLAKLAK\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	out, err := ReadFASTAFile(path, peptide.NonToxic)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "KLAKLAKKLAKLAK", out[0].Sequence)
	assert.Equal(t, peptide.Toxic, out[0].Label)
	assert.Equal(t, "Original", out[0].Source)
}

func TestWriteDataset(t *testing.T) {
	dir := t.TempDir()

	m := NewMerger()
	m.Add(lp("KLAKLAKKLAKLAK", peptide.Toxic, "Sample"))
	m.Add(lp("RWRWRWRW", peptide.NonToxic, "Sample"))
	require.NoError(t, m.WriteDataset(dir))

	toxic, err := ReadFASTAFile(filepath.Join(dir, "toxic_peptides.fasta"), peptide.Toxic)
	require.NoError(t, err)
	require.Len(t, toxic, 1)
	assert.Equal(t, "KLAKLAKKLAKLAK", toxic[0].Sequence)

	nontoxic, err := ReadFASTAFile(filepath.Join(dir, "nontoxic_peptides.fasta"), peptide.NonToxic)
	require.NoError(t, err)
	require.Len(t, nontoxic, 1)

	info, err := os.ReadFile(filepath.Join(dir, "dataset_info.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "Total Peptides: 2")
	assert.Contains(t, string(info), "Sample: 2")
}
