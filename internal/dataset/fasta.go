package dataset

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hemolab/peptox/internal/peptide"
)

// FASTA headers carry three |-separated fields: a record index, the class
// tag, and the source tag, e.g.
//
//	>toxic_peptide_1|hemolytic|UniProt_Toxic
//	KLAKLAKKLAKLAK
//
// Only the class and source fields are semantically meaningful; the index is
// cosmetic. Sequences are written one line per record.
const (
	ClassTagToxic    = "hemolytic"
	ClassTagNonToxic = "antimicrobial"
)

// WriteFASTA writes peps as FASTA records with the class tag derived from
// label. All peps are expected to share the label's class; the header prefix
// and tag come from the label, the source from each record.
func WriteFASTA(w io.Writer, peps []peptide.LabeledPeptide, label peptide.Label) error {
	bw := bufio.NewWriter(w)

	tag := ClassTagNonToxic
	if label == peptide.Toxic {
		tag = ClassTagToxic
	}

	for i, p := range peps {
		source := p.Source
		if source == "" {
			source = "unknown"
		}
		if _, err := fmt.Fprintf(bw, ">%s_peptide_%d|%s|%s\n%s\n",
			label, i+1, tag, source, p.Sequence); err != nil {
			return fmt.Errorf("write FASTA record: %w", err)
		}
	}
	return bw.Flush()
}

// WriteFASTAFile writes peps to path, creating or truncating it.
func WriteFASTAFile(path string, peps []peptide.LabeledPeptide, label peptide.Label) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create FASTA file: %w", err)
	}
	defer f.Close()

	if err := WriteFASTA(f, peps, label); err != nil {
		return err
	}
	return f.Close()
}

// ReadFASTA parses FASTA records from r. The label comes from the header's
// class tag when present ("hemolytic" or "antimicrobial"), otherwise from
// fallback. The source is the last |-separated header field, or "unknown"
// for bare headers. Multi-line sequences are joined.
func ReadFASTA(r io.Reader, fallback peptide.Label) ([]peptide.LabeledPeptide, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var out []peptide.LabeledPeptide
	var header string
	var seq strings.Builder

	flush := func() {
		if seq.Len() == 0 {
			return
		}
		label, source := parseHeader(header, fallback)
		out = append(out, peptide.LabeledPeptide{
			Sequence: strings.ToUpper(seq.String()),
			Label:    label,
			Source:   source,
		})
		seq.Reset()
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			header = strings.TrimPrefix(line, ">")
			continue
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read FASTA: %w", err)
	}
	flush()

	return out, nil
}

// ReadFASTAFile reads FASTA records from path, transparently decompressing
// .gz files.
func ReadFASTAFile(path string, fallback peptide.Label) ([]peptide.LabeledPeptide, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open FASTA file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	return ReadFASTA(reader, fallback)
}

// parseHeader extracts the label and source from a |-separated header.
func parseHeader(header string, fallback peptide.Label) (peptide.Label, string) {
	fields := strings.Split(header, "|")

	label := fallback
	for _, f := range fields {
		switch strings.TrimSpace(f) {
		case ClassTagToxic:
			label = peptide.Toxic
		case ClassTagNonToxic:
			label = peptide.NonToxic
		}
	}

	source := "unknown"
	if len(fields) > 1 {
		if s := strings.TrimSpace(fields[len(fields)-1]); s != "" {
			source = s
		}
	}
	return label, source
}
