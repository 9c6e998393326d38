package main

import (
	"fmt"
	"os"

	"github.com/Michel-2503/Kopfrechnen/pkg/log"
	"github.com/Michel-2503/Kopfrechnen/pkg/random"
	"github.com/Michel-2503/Kopfrechnen/pkg/version"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	seed     int64
	logLevel string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "quiz",
		Short:        "Mental arithmetic quiz",
		Version:      version.Get(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLogLevel(opts.logLevel)
			if err != nil {
				return err
			}
			log.SetDefaultLogger(log.New(os.Stderr, "", log.DefaultLoggerFlag, level))
			return nil
		},
	}
	cmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "Seed for the problem generator (0 picks a random seed)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level")

	cmd.AddCommand(
		newPlayCommand(opts),
		newSampleCommand(opts),
		newVerifyCommand(opts),
		newWatchCommand(),
	)
	return cmd
}

func (o *rootOptions) resolveSeed() (int64, error) {
	seed, err := random.SeedOrNew(o.seed)
	if err != nil {
		return 0, fmt.Errorf("failed to seed problem generator: %v", err)
	}
	log.Debug("Using seed %d", seed)
	return seed, nil
}
