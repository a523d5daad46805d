// Package cluster removes near-duplicate peptides with a greedy CD-HIT-style
// pass: longer sequences become representatives, shorter ones within the
// identity threshold of any representative are dropped. Run once per label
// class; clustering across classes would not prevent train/test leakage.
package cluster

import (
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/hemolab/peptox/internal/align"
	"github.com/hemolab/peptox/internal/peptide"
)

// DefaultThreshold is the identity percentage above which two sequences are
// considered redundant.
const DefaultThreshold = 90.0

// Config controls one clustering pass.
type Config struct {
	// Threshold is the redundancy cutoff in percent identity (0-100].
	Threshold float64
	// Workers bounds the parallel representative scan; <= 0 means NumCPU.
	Workers int
}

// Clusterer partitions peptide collections into non-redundant
// representatives.
type Clusterer struct {
	cfg    Config
	logger *zap.Logger
}

// New creates a clusterer. A zero threshold falls back to DefaultThreshold.
func New(cfg Config) *Clusterer {
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Clusterer{cfg: cfg, logger: zap.NewNop()}
}

// SetLogger sets the logger for progress reporting.
func (c *Clusterer) SetLogger(l *zap.Logger) {
	c.logger = l
}

// Cluster returns the representatives of peps under the configured
// threshold. Input order does not matter: candidates are visited longest
// first, with lexical order as the tie-break so repeated runs agree. The
// scan is O(n^2) alignments in the worst case; the comparison loop per
// candidate is spread over the worker pool.
func (c *Clusterer) Cluster(peps []peptide.LabeledPeptide) []peptide.LabeledPeptide {
	sorted := make([]peptide.LabeledPeptide, len(peps))
	copy(sorted, peps)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i].Sequence) != len(sorted[j].Sequence) {
			return len(sorted[i].Sequence) > len(sorted[j].Sequence)
		}
		return sorted[i].Sequence < sorted[j].Sequence
	})

	var representatives []peptide.LabeledPeptide
	for _, p := range sorted {
		if !c.redundant(p.Sequence, representatives) {
			representatives = append(representatives, p)
		}
	}

	c.logger.Info("clustering pass complete",
		zap.Int("input", len(peps)),
		zap.Int("representatives", len(representatives)),
		zap.Float64("threshold", c.cfg.Threshold))

	return representatives
}

// redundant reports whether seq is within the threshold of any current
// representative. Representatives are split across workers; the first hit
// flips a shared flag that the other workers poll to stop early.
func (c *Clusterer) redundant(seq string, reps []peptide.LabeledPeptide) bool {
	if len(reps) == 0 {
		return false
	}

	workers := c.cfg.Workers
	if workers > len(reps) {
		workers = len(reps)
	}
	if workers == 1 {
		for _, rep := range reps {
			if align.Identity(seq, rep.Sequence) >= c.cfg.Threshold {
				return true
			}
		}
		return false
	}

	var hit atomic.Bool
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func(offset int) {
			defer wg.Done()
			for i := offset; i < len(reps); i += workers {
				if hit.Load() {
					return
				}
				if align.Identity(seq, reps[i].Sequence) >= c.cfg.Threshold {
					hit.Store(true)
					return
				}
			}
		}(w)
	}

	wg.Wait()
	return hit.Load()
}

// ClusterByClass clusters toxic and non-toxic pools concurrently; the two
// passes share nothing.
func (c *Clusterer) ClusterByClass(toxic, nontoxic []peptide.LabeledPeptide) (toxicNR, nontoxicNR []peptide.LabeledPeptide) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		toxicNR = c.Cluster(toxic)
	}()
	go func() {
		defer wg.Done()
		nontoxicNR = c.Cluster(nontoxic)
	}()

	wg.Wait()
	return toxicNR, nontoxicNR
}
