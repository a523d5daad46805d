package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hemolab/peptox/internal/dataset"
	"github.com/hemolab/peptox/internal/features"
	"github.com/hemolab/peptox/internal/peptide"
	"github.com/hemolab/peptox/internal/store"
)

func newExtractCmd() *cobra.Command {
	var (
		outPath     string
		dipeptide   bool
		workers     int
		dbPath      string
		datasetName string
	)

	cmd := &cobra.Command{
		Use:   "extract <toxic.fasta> [nontoxic.fasta]",
		Short: "Extract a feature matrix from FASTA datasets",
		Long: `Convert sequences into fixed-length feature vectors: 20 amino-acid
composition values, the sequence length, 6 physicochemical properties, and
optionally 400 dipeptide composition values. Column order is stable; a model
must be trained and applied with the same --dipeptide setting.`,
		Example: `  peptox extract data/processed/toxic_peptides_nr90.fasta \
                 data/processed/nontoxic_peptides_nr90.fasta -o features.csv
  peptox extract peptides.fasta --dipeptide -o features_dpc.csv`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			toxic, err := dataset.ReadFASTAFile(args[0], peptide.Toxic)
			if err != nil {
				return err
			}
			peps := toxic
			if len(args) == 2 {
				nontoxic, err := dataset.ReadFASTAFile(args[1], peptide.NonToxic)
				if err != nil {
					return err
				}
				peps = append(peps, nontoxic...)
			}
			if len(peps) == 0 {
				return fmt.Errorf("no sequences found in input")
			}

			sequences := make([]string, len(peps))
			labels := make([]peptide.Label, len(peps))
			for i, p := range peps {
				sequences[i] = p.Sequence
				labels[i] = p.Label
			}

			extractor := features.New(features.Config{UseDipeptide: dipeptide})
			extractor.SetLogger(logger)

			logger.Info("extracting features",
				zap.Int("sequences", len(sequences)),
				zap.Int("features", extractor.FeatureCount()))

			matrix, labels, err := extractor.ExtractBatchParallel(sequences, labels, workers)
			if err != nil {
				return err
			}

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer out.Close()

			w := features.NewMatrixWriter(out, extractor, true)
			if err := w.WriteHeader(); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
			for i, row := range matrix {
				if err := w.WriteRow(sequences[i], row, labels[i]); err != nil {
					return fmt.Errorf("write row: %w", err)
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}
			logger.Info("wrote feature matrix", zap.String("path", outPath))

			if dbPath != "" {
				s, err := store.Open(dbPath)
				if err != nil {
					return err
				}
				defer s.Close()

				if err := s.RecordRun(store.RunRecord{
					Dataset:    datasetName,
					Sequences:  len(sequences),
					Features:   extractor.FeatureCount(),
					Dipeptide:  dipeptide,
					OutputPath: outPath,
				}); err != nil {
					return err
				}
				logger.Info("recorded extraction run", zap.String("db", dbPath))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "features.csv", "output CSV path")
	cmd.Flags().BoolVar(&dipeptide, "dipeptide", false, "include 400 dipeptide composition features")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel extraction workers (0 = NumCPU)")
	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB catalog to record this run in")
	cmd.Flags().StringVar(&datasetName, "dataset", "merged", "dataset name for the run record")

	return cmd
}
