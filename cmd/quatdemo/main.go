// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Command quatdemo prints the results of sample quaternion
// operations.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sp4ghet/quaternion/internal/sample"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		config string
		level  string
	)
	cmd := &cobra.Command{
		Use:   "quatdemo",
		Short: "Print sample quaternion products, inverses and interpolations",
		Long: `quatdemo computes conjugates, products, an inverse identity check,
lerp, slerp and a vector rotation for two sample quaternions.
The inputs can be overridden with a YAML file given by --config.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := sample.NewLogger(level)
			if err != nil {
				return err
			}
			defer log.Sync()

			c := sample.DefaultConfig()
			if config != "" {
				if c, err = sample.LoadFile(config); err != nil {
					return err
				}
			}
			return sample.Run(c, log, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&config, "config", "c", "", "YAML file with sample inputs")
	cmd.Flags().StringVar(&level, "log-level", "warn", "log level (debug, info, warn, error)")
	return cmd
}
