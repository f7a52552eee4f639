package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var jnigenCmd = &cobra.Command{
	Use:   "jnigen",
	Short: "Generate Go wrappers for runtime classes",
	Long:  "jnigen generates typed Go wrappers for runtime classes described by a YAML manifest.",

	SilenceUsage: true,
}

func init() {
	jnigenCmd.AddCommand(generateCmd, descriptorCmd)
}

func main() {
	if err := jnigenCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jnigen:", err)
		os.Exit(1)
	}
}
