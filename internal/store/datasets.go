package store

import (
	"context"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/hemolab/peptox/internal/peptide"
)

type peptideKey struct {
	sequence string
	label    peptide.Label
}

// WriteSnapshot batch-inserts a named dataset snapshot using the Appender
// API. Duplicate (sequence, label) entries are deduplicated before writing;
// an existing snapshot with the same name is replaced.
func (s *Store) WriteSnapshot(dataset string, peps []peptide.LabeledPeptide) error {
	if _, err := s.db.Exec("DELETE FROM dataset_peptides WHERE dataset=?", dataset); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	if len(peps) == 0 {
		return nil
	}

	seen := make(map[peptideKey]bool, len(peps))
	deduped := make([]peptide.LabeledPeptide, 0, len(peps))
	for _, p := range peps {
		k := peptideKey{p.Sequence, p.Label}
		if !seen[k] {
			seen[k] = true
			deduped = append(deduped, p)
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "dataset_peptides")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, p := range deduped {
		if err := appender.AppendRow(dataset, p.Sequence, int32(p.Label), p.Source); err != nil {
			return fmt.Errorf("append peptide: %w", err)
		}
	}

	return appender.Flush()
}

// LoadSnapshot reads a named snapshot back in sequence order.
func (s *Store) LoadSnapshot(dataset string) ([]peptide.LabeledPeptide, error) {
	rows, err := s.db.Query(`SELECT sequence, label, source
		FROM dataset_peptides WHERE dataset=? ORDER BY sequence`, dataset)
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	defer rows.Close()

	var peps []peptide.LabeledPeptide
	for rows.Next() {
		var p peptide.LabeledPeptide
		var label int32
		if err := rows.Scan(&p.Sequence, &label, &p.Source); err != nil {
			return nil, fmt.Errorf("scan peptide: %w", err)
		}
		p.Label = peptide.Label(label)
		peps = append(peps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate peptides: %w", err)
	}
	return peps, nil
}

// SnapshotCounts returns the per-class sizes of a named snapshot.
func (s *Store) SnapshotCounts(dataset string) (toxic, nontoxic int, err error) {
	rows, err := s.db.Query(`SELECT label, COUNT(*) FROM dataset_peptides
		WHERE dataset=? GROUP BY label`, dataset)
	if err != nil {
		return 0, 0, fmt.Errorf("query snapshot counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var label int32
		var n int
		if err := rows.Scan(&label, &n); err != nil {
			return 0, 0, fmt.Errorf("scan snapshot counts: %w", err)
		}
		if peptide.Label(label) == peptide.Toxic {
			toxic = n
		} else {
			nontoxic = n
		}
	}
	return toxic, nontoxic, rows.Err()
}

// Datasets lists snapshot names in the catalog.
func (s *Store) Datasets() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT dataset FROM dataset_peptides ORDER BY dataset`)
	if err != nil {
		return nil, fmt.Errorf("query datasets: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan dataset name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
