package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/hemolab/peptox/internal/peptide"
)

// WriteInfo writes the human-readable dataset summary that accompanies the
// FASTA pair: totals, class split, and per-source distribution.
func (m *Merger) WriteInfo(w io.Writer) error {
	bw := bufio.NewWriter(w)

	toxic, nontoxic := m.Counts()
	total := toxic + nontoxic

	fmt.Fprintln(bw, "PEPTIDE DATASET INFORMATION")
	fmt.Fprintln(bw, "===========================")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Total Peptides: %d\n", total)
	if total > 0 {
		fmt.Fprintf(bw, "Toxic: %d (%.1f%%)\n", toxic, float64(toxic)/float64(total)*100)
		fmt.Fprintf(bw, "Non-toxic: %d (%.1f%%)\n", nontoxic, float64(nontoxic)/float64(total)*100)
	} else {
		fmt.Fprintf(bw, "Toxic: 0\nNon-toxic: 0\n")
	}
	fmt.Fprintf(bw, "Exact duplicates dropped: %d\n", m.Duplicates())
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "Source Distribution:")
	dist := m.SourceDistribution()
	sources := make([]string, 0, len(dist))
	for s := range dist {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	for _, s := range sources {
		fmt.Fprintf(bw, "  %s: %d\n", s, dist[s])
	}

	return bw.Flush()
}

// WriteInfoFile writes the summary to path.
func (m *Merger) WriteInfoFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create info file: %w", err)
	}
	defer f.Close()

	if err := m.WriteInfo(f); err != nil {
		return err
	}
	return f.Close()
}

// WriteDataset writes the merged pools as the standard FASTA pair under
// dir: toxic_peptides.fasta, nontoxic_peptides.fasta, dataset_info.txt.
func (m *Merger) WriteDataset(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := WriteFASTAFile(filepath.Join(dir, "toxic_peptides.fasta"),
		m.Class(peptide.Toxic), peptide.Toxic); err != nil {
		return err
	}
	if err := WriteFASTAFile(filepath.Join(dir, "nontoxic_peptides.fasta"),
		m.Class(peptide.NonToxic), peptide.NonToxic); err != nil {
		return err
	}
	return m.WriteInfoFile(filepath.Join(dir, "dataset_info.txt"))
}
