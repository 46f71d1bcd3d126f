// Package main is the entry point for the combat companion
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "combat-companion",
	Short: "D&D 5e combat dashboard",
	Long: `Combat companion loads a D&D Beyond character, sorts everything it can do
into actions, bonus actions and reactions, and asks a generative model for a
turn plan.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(adviseCmd)
}
