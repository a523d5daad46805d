// Package features converts validated peptide sequences into fixed-length
// numeric vectors: amino-acid composition, sequence length, physicochemical
// properties, and optional dipeptide composition.
package features

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hemolab/peptox/internal/peptide"
)

// Vector lengths with and without dipeptide composition.
const (
	BaseFeatureCount      = 27 // 20 AAC + length + 6 physicochemical
	DipeptideFeatureCount = BaseFeatureCount + 400
)

// Config selects which feature blocks the extractor emits. The flag must be
// pinned end-to-end: a matrix extracted with dipeptides enabled is not
// compatible with a model trained without them.
type Config struct {
	UseDipeptide bool
}

// Extractor turns sequences into feature vectors. Extraction is stateless
// and safe for concurrent use.
type Extractor struct {
	cfg    Config
	names  []string
	logger *zap.Logger
}

// New creates an extractor for the given configuration.
func New(cfg Config) *Extractor {
	return &Extractor{
		cfg:    cfg,
		names:  buildFeatureNames(cfg),
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for degenerate-sequence warnings.
func (e *Extractor) SetLogger(l *zap.Logger) {
	e.logger = l
}

// FeatureCount returns the vector length this extractor produces.
func (e *Extractor) FeatureCount() int {
	if e.cfg.UseDipeptide {
		return DipeptideFeatureCount
	}
	return BaseFeatureCount
}

// FeatureNames returns descriptive names in vector order, for matrix headers
// and model interpretation.
func (e *Extractor) FeatureNames() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)
	return out
}

func buildFeatureNames(cfg Config) []string {
	names := make([]string, 0, DipeptideFeatureCount)
	for i := 0; i < len(peptide.Alphabet); i++ {
		names = append(names, "AAC_"+string(peptide.Alphabet[i]))
	}
	names = append(names, "length",
		"molecular_weight", "net_charge_pH7", "isoelectric_point",
		"aromaticity", "instability_index", "gravy")
	if cfg.UseDipeptide {
		for i := 0; i < len(peptide.Alphabet); i++ {
			for j := 0; j < len(peptide.Alphabet); j++ {
				names = append(names, "DPC_"+string(peptide.Alphabet[i])+string(peptide.Alphabet[j]))
			}
		}
	}
	return names
}

// Extract computes the feature vector for one sequence. Blocks appear in
// fixed order: AAC, length, physicochemical, then dipeptide composition when
// enabled. A sequence that defeats the physicochemical computation gets a
// zero property block and a warning instead of failing the batch.
func (e *Extractor) Extract(seq string) []float64 {
	vec := make([]float64, 0, e.FeatureCount())

	vec = append(vec, aminoAcidComposition(seq)...)
	vec = append(vec, float64(len(seq)))

	props, err := physicochemical(seq)
	if err != nil {
		e.logger.Warn("physicochemical computation failed, substituting zeros",
			zap.String("sequence", truncate(seq, 20)),
			zap.Error(err))
	}
	vec = append(vec, props[:]...)

	if e.cfg.UseDipeptide {
		vec = append(vec, dipeptideComposition(seq)...)
	}
	return vec
}

// ExtractBatch maps Extract over sequences, preserving order: row i of the
// matrix corresponds to sequences[i]. Labels, when given, must be parallel
// to sequences and pass through unchanged.
func (e *Extractor) ExtractBatch(sequences []string, labels []peptide.Label) ([][]float64, []peptide.Label, error) {
	if labels != nil && len(labels) != len(sequences) {
		return nil, nil, fmt.Errorf("labels length %d does not match sequences length %d",
			len(labels), len(sequences))
	}

	matrix := make([][]float64, len(sequences))
	for i, seq := range sequences {
		matrix[i] = e.Extract(seq)
	}
	return matrix, labels, nil
}

// aminoAcidComposition returns the 20 per-letter frequencies in canonical
// alphabet order. Zero-length input yields all zeros.
func aminoAcidComposition(seq string) []float64 {
	aac := make([]float64, len(peptide.Alphabet))
	if len(seq) == 0 {
		return aac
	}

	var counts [26]int
	for i := 0; i < len(seq); i++ {
		if c := seq[i]; c >= 'A' && c <= 'Z' {
			counts[c-'A']++
		}
	}
	for i := 0; i < len(peptide.Alphabet); i++ {
		aac[i] = float64(counts[peptide.Alphabet[i]-'A']) / float64(len(seq))
	}
	return aac
}

// dipeptideComposition returns the 400 ordered-pair frequencies, normalized
// by the number of consecutive pairs. Sequences shorter than 2 residues have
// no pairs and yield all zeros.
func dipeptideComposition(seq string) []float64 {
	dpc := make([]float64, len(peptide.Alphabet)*len(peptide.Alphabet))
	if len(seq) < 2 {
		return dpc
	}

	var index [26]int
	for i := range index {
		index[i] = -1
	}
	for i := 0; i < len(peptide.Alphabet); i++ {
		index[peptide.Alphabet[i]-'A'] = i
	}

	total := float64(len(seq) - 1)
	for i := 0; i < len(seq)-1; i++ {
		a, b := seq[i], seq[i+1]
		if a < 'A' || a > 'Z' || b < 'A' || b > 'Z' {
			continue
		}
		ia, ib := index[a-'A'], index[b-'A']
		if ia < 0 || ib < 0 {
			continue
		}
		dpc[ia*len(peptide.Alphabet)+ib] += 1 / total
	}
	return dpc
}
