package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"rocketviz/internal/logging"
	"rocketviz/internal/telemetry"
)

var (
	genOutput   string
	genInterval time.Duration
	genCount    int
	genSeed     int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic telemetry log",
	Long:  "generate writes synthetic ascent telemetry lines, for feeding 'visualize --log' or testing downstream tooling.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New(false)

		out := os.Stdout
		if genOutput != "" {
			f, err := os.Create(genOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		seed := genSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		src := telemetry.NewSyntheticSource(seed, logger)

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		ticker := time.NewTicker(genInterval)
		defer ticker.Stop()

		written := 0
		for {
			select {
			case <-ticker.C:
				if _, err := fmt.Fprintln(out, src.GenerateLine()); err != nil {
					return err
				}
				written++
				if genCount > 0 && written >= genCount {
					return nil
				}
			case <-sigs:
				logger.Info("generator stopped", "lines", written)
				return nil
			}
		}
	},
}

func init() {
	generateCmd.Flags().StringVar(&genOutput, "output", "", "Output file path (default STDOUT)")
	generateCmd.Flags().DurationVar(&genInterval, "interval", 200*time.Millisecond, "Interval between lines")
	generateCmd.Flags().IntVar(&genCount, "count", 0, "Number of lines to emit (0 = until interrupted)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for jitter randomness (0 = time-based)")
}
