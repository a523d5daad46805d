package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hemolab/peptox/internal/cluster"
	"github.com/hemolab/peptox/internal/dataset"
	"github.com/hemolab/peptox/internal/peptide"
)

func newClusterCmd() *cobra.Command {
	var (
		inDir    string
		outDir   string
		identity float64
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Remove near-duplicate sequences from a dataset",
		Long: `Greedy similarity clustering within each class: sequences are visited
longest first and dropped when their global-alignment identity to any kept
representative reaches the threshold. Toxic and non-toxic pools are
clustered independently. Cost is O(n^2) pairwise alignments per class;
keep inputs to a few thousand sequences per class or raise --workers.`,
		Example: `  peptox cluster -i data/raw -o data/processed
  peptox cluster -i data/raw -o data/processed --identity 80`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			if !cmd.Flags().Changed("identity") {
				identity = viper.GetFloat64("cluster.identity")
			}
			if identity <= 0 || identity > 100 {
				return fmt.Errorf("identity threshold must be in (0,100], got %g", identity)
			}

			toxic, err := dataset.ReadFASTAFile(
				filepath.Join(inDir, "toxic_peptides.fasta"), peptide.Toxic)
			if err != nil {
				return err
			}
			nontoxic, err := dataset.ReadFASTAFile(
				filepath.Join(inDir, "nontoxic_peptides.fasta"), peptide.NonToxic)
			if err != nil {
				return err
			}

			logger.Info("clustering dataset",
				zap.Int("toxic", len(toxic)),
				zap.Int("nontoxic", len(nontoxic)),
				zap.Float64("identity", identity))

			c := cluster.New(cluster.Config{Threshold: identity, Workers: workers})
			c.SetLogger(logger)
			toxicNR, nontoxicNR := c.ClusterByClass(toxic, nontoxic)

			removed := len(toxic) + len(nontoxic) - len(toxicNR) - len(nontoxicNR)
			logger.Info("redundancy removal complete",
				zap.Int("toxic_nr", len(toxicNR)),
				zap.Int("nontoxic_nr", len(nontoxicNR)),
				zap.Int("removed", removed))

			suffix := fmt.Sprintf("_nr%.0f.fasta", identity)
			if err := writeClusterOutput(outDir, "toxic_peptides"+suffix,
				toxicNR, peptide.Toxic); err != nil {
				return err
			}
			return writeClusterOutput(outDir, "nontoxic_peptides"+suffix,
				nontoxicNR, peptide.NonToxic)
		},
	}

	cmd.Flags().StringVarP(&inDir, "in", "i", "data/raw", "directory with the merged FASTA pair")
	cmd.Flags().StringVarP(&outDir, "out", "o", "data/processed", "output directory")
	cmd.Flags().Float64Var(&identity, "identity", 90, "redundancy threshold in percent identity")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel alignment workers (0 = NumCPU)")

	return cmd
}

func writeClusterOutput(dir, name string, peps []peptide.LabeledPeptide, label peptide.Label) error {
	if err := ensureDir(dir); err != nil {
		return err
	}
	return dataset.WriteFASTAFile(filepath.Join(dir, name), peps, label)
}
