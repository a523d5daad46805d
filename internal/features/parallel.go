package features

import (
	"runtime"
	"sync"

	"github.com/hemolab/peptox/internal/peptide"
)

// WorkItem holds one sequence queued for extraction.
type WorkItem struct {
	Seq      int
	Sequence string
	Label    peptide.Label
}

// WorkResult holds the feature row for one sequence.
type WorkResult struct {
	Seq      int
	Sequence string
	Label    peptide.Label
	Row      []float64
}

// ParallelExtract extracts feature rows using a pool of workers. Results
// arrive on the returned channel in completion order, not sequence order;
// use OrderedCollect to consume them in order. If workers is 0,
// runtime.NumCPU() is used.
func (e *Extractor) ParallelExtract(items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for item := range items {
				results <- WorkResult{
					Seq:      item.Seq,
					Sequence: item.Sequence,
					Label:    item.Label,
					Row:      e.Extract(item.Sequence),
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order,
// buffering out-of-order results until the next expected number arrives.
// Blocks until the results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}

// ExtractBatchParallel is ExtractBatch with a worker pool. Row order matches
// input order.
func (e *Extractor) ExtractBatchParallel(sequences []string, labels []peptide.Label, workers int) ([][]float64, []peptide.Label, error) {
	if labels != nil && len(labels) != len(sequences) {
		return e.ExtractBatch(sequences, labels) // reuse the length-mismatch error
	}

	items := make(chan WorkItem, 2*runtime.NumCPU())
	go func() {
		defer close(items)
		for i, seq := range sequences {
			item := WorkItem{Seq: i, Sequence: seq}
			if labels != nil {
				item.Label = labels[i]
			}
			items <- item
		}
	}()

	matrix := make([][]float64, len(sequences))
	results := e.ParallelExtract(items, workers)
	if err := OrderedCollect(results, func(r WorkResult) error {
		matrix[r.Seq] = r.Row
		return nil
	}); err != nil {
		return nil, nil, err
	}

	return matrix, labels, nil
}
