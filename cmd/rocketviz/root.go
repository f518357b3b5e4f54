package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rocketviz",
	Short: "Rocket telemetry visualizer",
	Long:  "rocketviz renders a rocket's live orientation and particle effects from a telemetry log stream.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(visualizeCmd)
	rootCmd.AddCommand(generateCmd)
}
