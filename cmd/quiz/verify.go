package main

import (
	"fmt"

	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/constants"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/expr"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/problems"
	"github.com/spf13/cobra"
)

func newVerifyCommand(root *rootOptions) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that generated answers match their expressions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive")
			}
			seed, err := root.resolveSeed()
			if err != nil {
				return err
			}
			generator := problems.NewGenerator(seed)
			out := cmd.OutOrStdout()

			failures := 0
			for level := 1; level <= constants.MaxLevel; level++ {
				for i := 0; i < count; i++ {
					p := generator.Generate(level)
					if err := expr.Check(p); err != nil {
						failures++
						fmt.Fprintf(out, "level %d: %v\n", level, err)
					}
				}
				fmt.Fprintf(out, "level %d: checked %d problems\n", level, count)
			}

			stats := generator.Stats()
			fmt.Fprintf(out, "generated %d, division rejections %d, division fallbacks %d\n",
				stats.Generated, stats.DivisionRejections, stats.DivisionFallbacks)
			if failures > 0 {
				return fmt.Errorf("%d of %d problems failed verification (seed %d)", failures, count*constants.MaxLevel, seed)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 1000, "Problems to check per level")
	return cmd
}
