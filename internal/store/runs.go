package store

import (
	"fmt"
	"time"
)

// RunRecord describes one feature-extraction run. Features and Dipeptide pin
// the extractor configuration so a later inference call can check it matches
// what a model was trained with.
type RunRecord struct {
	RunAt      time.Time
	Dataset    string
	Sequences  int
	Features   int
	Dipeptide  bool
	OutputPath string
}

// RecordRun appends one extraction-run record.
func (s *Store) RecordRun(r RunRecord) error {
	if r.RunAt.IsZero() {
		r.RunAt = time.Now()
	}
	_, err := s.db.Exec(`INSERT INTO extraction_runs
		(run_at, dataset, sequences, features, dipeptide, output_path)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunAt, r.Dataset, r.Sequences, r.Features, r.Dipeptide, r.OutputPath)
	if err != nil {
		return fmt.Errorf("insert run record: %w", err)
	}
	return nil
}

// Runs returns extraction-run records, newest first, capped at limit
// (limit <= 0 means all).
func (s *Store) Runs(limit int) ([]RunRecord, error) {
	q := `SELECT run_at, dataset, sequences, features, dipeptide, output_path
		FROM extraction_runs ORDER BY run_at DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.RunAt, &r.Dataset, &r.Sequences, &r.Features,
			&r.Dipeptide, &r.OutputPath); err != nil {
			return nil, fmt.Errorf("scan run record: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
