// Package dataset assembles labeled peptide collections from multiple
// sources: exact-duplicate merging, class balancing, tagged source loading,
// and the FASTA persistence format shared with downstream tooling.
package dataset

import (
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"github.com/hemolab/peptox/internal/peptide"
)

// Merger accumulates validated peptides into per-class pools keyed by exact
// sequence content. The first source to contribute a sequence wins; later
// identical sequences are counted as duplicates and dropped, which makes the
// final sequence sets order-invariant (only the retained source tag depends
// on insertion order).
type Merger struct {
	toxic    map[string]string // sequence -> source
	nontoxic map[string]string

	duplicates int
	logger     *zap.Logger
}

// NewMerger creates an empty merger.
func NewMerger() *Merger {
	return &Merger{
		toxic:    make(map[string]string),
		nontoxic: make(map[string]string),
		logger:   zap.NewNop(),
	}
}

// SetLogger sets the logger for balance warnings.
func (m *Merger) SetLogger(l *zap.Logger) {
	m.logger = l
}

// Add offers one validated peptide. It returns true if the sequence was new
// for its class, false if it was an exact duplicate.
func (m *Merger) Add(p peptide.LabeledPeptide) bool {
	pool := m.pool(p.Label)
	if _, seen := pool[p.Sequence]; seen {
		m.duplicates++
		return false
	}
	pool[p.Sequence] = p.Source
	return true
}

// AddAll offers a batch and returns how many were new.
func (m *Merger) AddAll(peps []peptide.LabeledPeptide) int {
	added := 0
	for _, p := range peps {
		if m.Add(p) {
			added++
		}
	}
	return added
}

func (m *Merger) pool(l peptide.Label) map[string]string {
	if l == peptide.Toxic {
		return m.toxic
	}
	return m.nontoxic
}

// Counts returns the current per-class pool sizes.
func (m *Merger) Counts() (toxic, nontoxic int) {
	return len(m.toxic), len(m.nontoxic)
}

// Duplicates returns how many exact duplicates were dropped so far.
func (m *Merger) Duplicates() int {
	return m.duplicates
}

// Class returns the pool for label l as a sorted slice of labeled peptides.
// Sorting keeps output deterministic regardless of map iteration order.
func (m *Merger) Class(l peptide.Label) []peptide.LabeledPeptide {
	pool := m.pool(l)
	out := make([]peptide.LabeledPeptide, 0, len(pool))
	for seq, source := range pool {
		out = append(out, peptide.LabeledPeptide{Sequence: seq, Label: l, Source: source})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out
}

// Balance caps each class at targetSize/2 by seeded uniform subsampling.
// A class already at or below the cap is kept whole; if the final total
// falls short of targetSize a warning is logged rather than an error, since
// training on a smaller balanced set is acceptable.
func (m *Merger) Balance(targetSize int, seed int64) {
	perClass := targetSize / 2
	rng := rand.New(rand.NewSource(seed))

	m.toxic = subsample(m.Class(peptide.Toxic), perClass, rng)
	m.nontoxic = subsample(m.Class(peptide.NonToxic), perClass, rng)

	total := len(m.toxic) + len(m.nontoxic)
	if total < targetSize {
		m.logger.Warn("balanced dataset smaller than target",
			zap.Int("total", total),
			zap.Int("target", targetSize))
	}
}

func subsample(peps []peptide.LabeledPeptide, limit int, rng *rand.Rand) map[string]string {
	if len(peps) > limit {
		rng.Shuffle(len(peps), func(i, j int) {
			peps[i], peps[j] = peps[j], peps[i]
		})
		peps = peps[:limit]
	}

	pool := make(map[string]string, len(peps))
	for _, p := range peps {
		pool[p.Sequence] = p.Source
	}
	return pool
}

// SourceDistribution counts retained sequences per source tag across both
// classes.
func (m *Merger) SourceDistribution() map[string]int {
	dist := make(map[string]int)
	for _, source := range m.toxic {
		dist[source]++
	}
	for _, source := range m.nontoxic {
		dist[source]++
	}
	return dist
}
