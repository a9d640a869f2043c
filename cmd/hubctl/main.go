// Command hubctl inspects a hub dataset from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/plague-community-hub/internal/seed"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree; each call returns fresh flag state
func newRootCmd() *cobra.Command {
	var seedPath string

	rootCmd := &cobra.Command{
		Use:           "hubctl",
		Short:         "Inspect the Plague community hub dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", os.Getenv("SEED_PATH"), "Seed file (.json, .yaml); empty uses the built-in dataset")

	load := func() (*seed.Dataset, error) {
		return seed.Load(seedPath)
	}

	rootCmd.AddCommand(newMembersCmd(load))
	rootCmd.AddCommand(newProjectsCmd(load))
	rootCmd.AddCommand(newContagionCmd(load))
	rootCmd.AddCommand(newValidateCmd(load))
	return rootCmd
}
