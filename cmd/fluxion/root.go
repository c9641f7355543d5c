package main

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "fluxion",
	Short:        "Drive whole-job lifecycle transitions of a fluxion process",
	SilenceUsage: true,
}
