// Package main provides the peptox command-line tool: dataset preparation,
// redundancy removal and feature extraction for peptide toxicity modeling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peptox",
		Short: "Peptide toxicity dataset and feature toolkit",
		Long: `peptox builds non-redundant hemolytic/non-hemolytic peptide datasets and
extracts fixed-length feature matrices for classifier training.

Typical pipeline:
  peptox merge --sample -o data/raw
  peptox cluster -i data/raw -o data/processed --identity 90
  peptox extract data/processed/toxic_peptides_nr90.fasta \
                 data/processed/nontoxic_peptides_nr90.fasta -o features.csv`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	cmd.AddCommand(newMergeCmd())
	cmd.AddCommand(newClusterCmd())
	cmd.AddCommand(newExtractCmd())
	cmd.AddCommand(newFeaturesCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig loads ~/.peptox.yaml and seeds defaults for every tunable the
// subcommands read through viper. Flags override config values.
func initConfig() error {
	viper.SetDefault("clean.min_length", 5)
	viper.SetDefault("clean.max_length", 100)
	viper.SetDefault("cluster.identity", 90.0)
	viper.SetDefault("merge.target_size", 10000)
	viper.SetDefault("merge.seed", 42)

	home, err := os.UserHomeDir()
	if err != nil {
		return nil // no home directory, run on defaults
	}

	viper.SetConfigFile(filepath.Join(home, ".peptox.yaml"))
	if err := viper.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// newLogger builds the CLI logger: human-readable on stderr, debug level
// with --verbose.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
