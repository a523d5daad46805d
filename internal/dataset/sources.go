package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hemolab/peptox/internal/peptide"
)

// SourceKind tags the loader variant a SourceSpec dispatches to.
type SourceKind int

const (
	// SourceFASTA is a FASTA file whose records all share one label.
	SourceFASTA SourceKind = iota
	// SourceCSV is a DBAASP-style CSV with Sequence and HC50 columns;
	// records are labeled by the HC50 threshold.
	SourceCSV
	// SourceFASTAWithActivity is a FASTA file paired with an activity CSV;
	// records whose ID appears with a hemolytic/cytotoxic annotation are
	// toxic, the rest non-toxic.
	SourceFASTAWithActivity
	// SourceSample is the built-in literature dataset; no files needed.
	SourceSample
)

// DefaultHC50Threshold splits DBAASP records: HC50 below it (ug/mL) means
// hemolytic.
const DefaultHC50Threshold = 100.0

// SourceSpec describes one data source. Kind selects the loader; the other
// fields feed it.
type SourceSpec struct {
	Kind SourceKind
	Name string // source tag attached to accepted peptides

	Path         string        // FASTA or CSV path
	ActivityPath string        // activity CSV for SourceFASTAWithActivity
	Label        peptide.Label // fixed label for SourceFASTA
	HC50         float64       // threshold for SourceCSV; 0 means default
}

// Load reads, validates and labels the peptides of one source. Every raw
// sequence passes through v before being offered; rejected records only
// bump the validator's counters. A missing or unreadable source file is an
// error the caller should treat as skip-this-source, not as fatal.
func Load(spec SourceSpec, v *peptide.Validator) ([]peptide.LabeledPeptide, error) {
	switch spec.Kind {
	case SourceFASTA:
		return loadFASTA(spec, v)
	case SourceCSV:
		return loadCSV(spec, v)
	case SourceFASTAWithActivity:
		return loadFASTAWithActivity(spec, v)
	case SourceSample:
		return loadSample(spec, v), nil
	}
	return nil, fmt.Errorf("unknown source kind %d", spec.Kind)
}

func loadFASTA(spec SourceSpec, v *peptide.Validator) ([]peptide.LabeledPeptide, error) {
	records, err := ReadFASTAFile(spec.Path, spec.Label)
	if err != nil {
		return nil, err
	}

	var out []peptide.LabeledPeptide
	for _, rec := range records {
		v.Stats.TotalLoaded++
		seq, reason := v.Validate(rec.Sequence)
		if reason != peptide.OK {
			continue
		}
		out = append(out, peptide.LabeledPeptide{
			Sequence: seq,
			Label:    spec.Label,
			Source:   spec.Name,
		})
	}
	return out, nil
}

// loadCSV reads a DBAASP-style table. Rows with an unparsable or missing
// HC50 are skipped; the sequence column is validated like any other source.
func loadCSV(spec SourceSpec, v *peptide.Validator) ([]peptide.LabeledPeptide, error) {
	f, err := os.Open(spec.Path)
	if err != nil {
		return nil, fmt.Errorf("open CSV file: %w", err)
	}
	defer f.Close()

	threshold := spec.HC50
	if threshold <= 0 {
		threshold = DefaultHC50Threshold
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	seqCol, hc50Col := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "sequence":
			seqCol = i
		case "hc50":
			hc50Col = i
		}
	}
	if seqCol < 0 || hc50Col < 0 {
		return nil, fmt.Errorf("CSV %s is missing Sequence/HC50 columns", spec.Path)
	}

	var out []peptide.LabeledPeptide
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}
		if seqCol >= len(row) || hc50Col >= len(row) {
			continue
		}

		v.Stats.TotalLoaded++
		seq, reason := v.Validate(row[seqCol])
		if reason != peptide.OK {
			continue
		}

		hc50, err := strconv.ParseFloat(strings.TrimSpace(row[hc50Col]), 64)
		if err != nil {
			continue
		}

		label := peptide.NonToxic
		if hc50 < threshold {
			label = peptide.Toxic
		}
		out = append(out, peptide.LabeledPeptide{
			Sequence: seq,
			Label:    label,
			Source:   spec.Name,
		})
	}
	return out, nil
}

// loadFASTAWithActivity labels FASTA records by annotation keyword: any
// activity row mentioning "hemolytic" or "cytotoxic" marks its ID toxic.
func loadFASTAWithActivity(spec SourceSpec, v *peptide.Validator) ([]peptide.LabeledPeptide, error) {
	toxicIDs, err := readActivityIDs(spec.ActivityPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(spec.Path)
	if err != nil {
		return nil, fmt.Errorf("open FASTA file: %w", err)
	}
	defer f.Close()

	records, ids, err := readFASTAWithIDs(f)
	if err != nil {
		return nil, err
	}

	var out []peptide.LabeledPeptide
	for i, raw := range records {
		v.Stats.TotalLoaded++
		seq, reason := v.Validate(raw)
		if reason != peptide.OK {
			continue
		}

		label := peptide.NonToxic
		if toxicIDs[ids[i]] {
			label = peptide.Toxic
		}
		out = append(out, peptide.LabeledPeptide{
			Sequence: seq,
			Label:    label,
			Source:   spec.Name,
		})
	}
	return out, nil
}

// readActivityIDs collects peptide IDs from activity rows that carry a
// toxicity keyword anywhere in the row. The first column is the ID.
func readActivityIDs(path string) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open activity file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	ids := make(map[string]bool)
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read activity row: %w", err)
		}
		if first {
			first = false
			continue
		}
		if len(row) == 0 {
			continue
		}

		joined := strings.ToLower(strings.Join(row, " "))
		if strings.Contains(joined, "hemolytic") || strings.Contains(joined, "cytotoxic") {
			ids[strings.TrimSpace(row[0])] = true
		}
	}
	return ids, nil
}

// readFASTAWithIDs parses FASTA keeping the first header token as the
// record ID (needed to join against activity annotations).
func readFASTAWithIDs(r io.Reader) (sequences []string, ids []string, err error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var id string
	var seq strings.Builder

	flush := func() {
		if id == "" && seq.Len() == 0 {
			return
		}
		ids = append(ids, id)
		sequences = append(sequences, seq.String())
		seq.Reset()
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			header := strings.TrimPrefix(line, ">")
			id = ""
			if fields := strings.FieldsFunc(header, func(r rune) bool {
				return r == ' ' || r == '|' || r == '\t'
			}); len(fields) > 0 {
				id = fields[0]
			}
			continue
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read FASTA: %w", err)
	}
	flush()

	return sequences, ids, nil
}
