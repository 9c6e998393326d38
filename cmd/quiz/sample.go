package main

import (
	"fmt"

	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/constants"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/problems"
	"github.com/spf13/cobra"
)

func newSampleCommand(root *rootOptions) *cobra.Command {
	var level, count int
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print generated problems with their answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if level < 1 || level > constants.MaxLevel {
				return fmt.Errorf("level must be between 1 and %d", constants.MaxLevel)
			}
			if count < 1 {
				return fmt.Errorf("count must be positive")
			}
			seed, err := root.resolveSeed()
			if err != nil {
				return err
			}
			generator := problems.NewGenerator(seed)
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				p := generator.Generate(level)
				fmt.Fprintf(out, "%-28s %d\n", p.Prompt(), p.Answer)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&level, "level", 1, "Difficulty level")
	cmd.Flags().IntVar(&count, "count", 10, "Number of problems")
	return cmd
}
