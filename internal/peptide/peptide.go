// Package peptide defines the sequence data model shared by the dataset and
// feature-extraction pipeline.
package peptide

import "strings"

// Alphabet is the canonical order of the 20 standard amino acids.
// Feature vectors and composition tables all index in this order.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

// Label classifies a peptide as hemolytic/cytotoxic or not.
type Label int

const (
	NonToxic Label = 0
	Toxic    Label = 1
)

// String returns the class tag used in FASTA headers and reports.
func (l Label) String() string {
	if l == Toxic {
		return "toxic"
	}
	return "nontoxic"
}

// LabeledPeptide is a validated sequence with its class label and the name
// of the database it came from. Immutable once created; sequences are value
// types, so two LabeledPeptides with the same sequence are duplicates
// regardless of source.
type LabeledPeptide struct {
	Sequence string
	Label    Label
	Source   string
}

// IsStandard reports whether every residue of seq is one of the 20 standard
// amino acids. seq is expected to be uppercase.
func IsStandard(seq string) bool {
	for i := 0; i < len(seq); i++ {
		if !strings.ContainsRune(Alphabet, rune(seq[i])) {
			return false
		}
	}
	return true
}
