package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hemolab/peptox/internal/dataset"
	"github.com/hemolab/peptox/internal/peptide"
	"github.com/hemolab/peptox/internal/store"
)

func newMergeCmd() *cobra.Command {
	var (
		outDir        string
		useSample     bool
		toxicFASTA    []string
		nontoxicFASTA []string
		csvFiles      []string
		actFASTA      string
		actCSV        string
		minLen        int
		maxLen        int
		targetSize    int
		seed          int64
		dbPath        string
		datasetName   string
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Clean, merge and balance peptide sources into a labeled dataset",
		Long: `Load peptides from one or more sources, validate sequences against the
20-letter alphabet and length bounds, drop exact duplicates (first source
wins), balance class sizes, and write the toxic/non-toxic FASTA pair plus a
dataset summary. A missing source file is skipped with a warning; the merge
fails only if no source loads at all.`,
		Example: `  peptox merge --sample -o data/raw
  peptox merge --toxic-fasta uniprot_toxic.fasta --nontoxic-fasta uniprot_amp.fasta
  peptox merge --csv dbaasp_hemolytic.csv --target-size 4000 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			if minLen == 0 {
				minLen = viper.GetInt("clean.min_length")
			}
			if maxLen == 0 {
				maxLen = viper.GetInt("clean.max_length")
			}
			if targetSize == 0 {
				targetSize = viper.GetInt("merge.target_size")
			}
			if !cmd.Flags().Changed("seed") {
				seed = viper.GetInt64("merge.seed")
			}

			var specs []dataset.SourceSpec
			if useSample {
				specs = append(specs, dataset.SourceSpec{
					Kind: dataset.SourceSample, Name: "Sample",
				})
			}
			for _, p := range toxicFASTA {
				specs = append(specs, dataset.SourceSpec{
					Kind: dataset.SourceFASTA, Path: p,
					Label: peptide.Toxic, Name: sourceName(p),
				})
			}
			for _, p := range nontoxicFASTA {
				specs = append(specs, dataset.SourceSpec{
					Kind: dataset.SourceFASTA, Path: p,
					Label: peptide.NonToxic, Name: sourceName(p),
				})
			}
			for _, p := range csvFiles {
				specs = append(specs, dataset.SourceSpec{
					Kind: dataset.SourceCSV, Path: p, Name: sourceName(p),
				})
			}
			if actFASTA != "" && actCSV != "" {
				specs = append(specs, dataset.SourceSpec{
					Kind: dataset.SourceFASTAWithActivity,
					Path: actFASTA, ActivityPath: actCSV,
					Name: sourceName(actFASTA),
				})
			}
			if len(specs) == 0 {
				return fmt.Errorf("no sources given; use --sample or --toxic-fasta/--nontoxic-fasta/--csv")
			}

			validator := peptide.NewValidator(minLen, maxLen)
			merger := dataset.NewMerger()
			merger.SetLogger(logger)

			loaded := 0
			for _, spec := range specs {
				peps, err := dataset.Load(spec, validator)
				if err != nil {
					logger.Warn("skipping source",
						zap.String("source", spec.Name),
						zap.Error(err))
					continue
				}
				added := merger.AddAll(peps)
				loaded++
				logger.Info("loaded source",
					zap.String("source", spec.Name),
					zap.Int("accepted", added))
			}
			if loaded == 0 {
				return fmt.Errorf("no source could be loaded")
			}

			merger.Balance(targetSize, seed)

			toxic, nontoxic := merger.Counts()
			logger.Info("merged dataset",
				zap.Int("toxic", toxic),
				zap.Int("nontoxic", nontoxic),
				zap.Int("duplicates_dropped", merger.Duplicates()),
				zap.Int("invalid_residue", validator.Stats.InvalidAA),
				zap.Int("too_short", validator.Stats.TooShort),
				zap.Int("too_long", validator.Stats.TooLong))

			if err := merger.WriteDataset(outDir); err != nil {
				return err
			}
			logger.Info("wrote dataset", zap.String("dir", outDir))

			if dbPath != "" {
				s, err := store.Open(dbPath)
				if err != nil {
					return err
				}
				defer s.Close()

				snapshot := append(merger.Class(peptide.Toxic),
					merger.Class(peptide.NonToxic)...)
				if err := s.WriteSnapshot(datasetName, snapshot); err != nil {
					return err
				}
				logger.Info("recorded snapshot",
					zap.String("db", dbPath),
					zap.String("dataset", datasetName))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "data/raw", "output directory")
	cmd.Flags().BoolVar(&useSample, "sample", false, "include the built-in literature dataset")
	cmd.Flags().StringArrayVar(&toxicFASTA, "toxic-fasta", nil, "FASTA file of toxic peptides (repeatable)")
	cmd.Flags().StringArrayVar(&nontoxicFASTA, "nontoxic-fasta", nil, "FASTA file of non-toxic peptides (repeatable)")
	cmd.Flags().StringArrayVar(&csvFiles, "csv", nil, "DBAASP-style CSV with Sequence/HC50 columns (repeatable)")
	cmd.Flags().StringVar(&actFASTA, "activity-fasta", "", "FASTA file labeled by activity annotations")
	cmd.Flags().StringVar(&actCSV, "activity-csv", "", "activity CSV paired with --activity-fasta")
	cmd.Flags().IntVar(&minLen, "min-length", 0, "minimum sequence length (default from config: 5)")
	cmd.Flags().IntVar(&maxLen, "max-length", 0, "maximum sequence length (default from config: 100)")
	cmd.Flags().IntVar(&targetSize, "target-size", 0, "total balanced dataset size (default from config: 10000)")
	cmd.Flags().Int64Var(&seed, "seed", 42, "subsampling seed")
	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB catalog to record the snapshot in")
	cmd.Flags().StringVar(&datasetName, "dataset", "merged", "snapshot name in the catalog")

	return cmd
}
