package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hemolab/peptox/internal/features"
	"github.com/hemolab/peptox/internal/peptide"
)

func newFeaturesCmd() *cobra.Command {
	var (
		dipeptide bool
		minLen    int
		maxLen    int
	)

	cmd := &cobra.Command{
		Use:   "features <sequence>",
		Short: "Print the feature vector for a single sequence",
		Example: `  peptox features KLAKLAKKLAKLAK
  peptox features --dipeptide GIGAVLKVLTTGLPALISWIKRKRQQ`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if minLen == 0 {
				minLen = viper.GetInt("clean.min_length")
			}
			if maxLen == 0 {
				maxLen = viper.GetInt("clean.max_length")
			}

			v := peptide.NewValidator(minLen, maxLen)
			seq, reason := v.Validate(args[0])
			if reason != peptide.OK {
				return fmt.Errorf("invalid sequence: %s", reason)
			}

			e := features.New(features.Config{UseDipeptide: dipeptide})
			vec := e.Extract(seq)
			names := e.FeatureNames()

			for i, name := range names {
				fmt.Printf("%s\t%g\n", name, vec[i])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dipeptide, "dipeptide", false, "include 400 dipeptide composition features")
	cmd.Flags().IntVar(&minLen, "min-length", 0, "minimum sequence length (default from config: 5)")
	cmd.Flags().IntVar(&maxLen, "max-length", 0, "maximum sequence length (default from config: 100)")

	return cmd
}
