package features

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hemolab/peptox/internal/peptide"
)

// MatrixWriter writes feature rows as CSV for the classifier-training
// handoff. Column order is the extractor's feature order, prefixed by the
// sequence and suffixed by the label when labels are present.
type MatrixWriter struct {
	w          *csv.Writer
	extractor  *Extractor
	withLabels bool
}

// NewMatrixWriter creates a writer bound to an extractor's feature layout.
func NewMatrixWriter(w io.Writer, e *Extractor, withLabels bool) *MatrixWriter {
	return &MatrixWriter{
		w:          csv.NewWriter(w),
		extractor:  e,
		withLabels: withLabels,
	}
}

// WriteHeader writes the column header row.
func (m *MatrixWriter) WriteHeader() error {
	header := append([]string{"sequence"}, m.extractor.FeatureNames()...)
	if m.withLabels {
		header = append(header, "label")
	}
	return m.w.Write(header)
}

// WriteRow writes one feature row. The row length must match the
// extractor's feature count.
func (m *MatrixWriter) WriteRow(seq string, row []float64, label peptide.Label) error {
	if len(row) != m.extractor.FeatureCount() {
		return fmt.Errorf("row has %d features, extractor produces %d",
			len(row), m.extractor.FeatureCount())
	}

	record := make([]string, 0, len(row)+2)
	record = append(record, seq)
	for _, v := range row {
		record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
	}
	if m.withLabels {
		record = append(record, strconv.Itoa(int(label)))
	}
	return m.w.Write(record)
}

// Flush flushes buffered rows and reports any write error.
func (m *MatrixWriter) Flush() error {
	m.w.Flush()
	return m.w.Error()
}
