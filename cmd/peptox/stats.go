package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hemolab/peptox/internal/store"
)

func newStatsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "stats <catalog.db>",
		Short: "Show dataset snapshots and extraction runs from a catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err != nil {
				return fmt.Errorf("catalog not found: %w", err)
			}

			s, err := store.Open(args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			datasets, err := s.Datasets()
			if err != nil {
				return err
			}
			fmt.Println("Datasets:")
			if len(datasets) == 0 {
				fmt.Println("  (none)")
			}
			for _, name := range datasets {
				toxic, nontoxic, err := s.SnapshotCounts(name)
				if err != nil {
					return err
				}
				fmt.Printf("  %s: %d toxic, %d non-toxic\n", name, toxic, nontoxic)
			}

			runs, err := s.Runs(limit)
			if err != nil {
				return err
			}
			fmt.Println("\nExtraction runs:")
			if len(runs) == 0 {
				fmt.Println("  (none)")
			}
			for _, r := range runs {
				mode := "base"
				if r.Dipeptide {
					mode = "dipeptide"
				}
				fmt.Printf("  %s  %s  %d sequences x %d features (%s) -> %s\n",
					r.RunAt.Format("2006-01-02 15:04:05"), r.Dataset,
					r.Sequences, r.Features, mode, r.OutputPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to show (0 = all)")

	return cmd
}
