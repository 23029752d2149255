package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/jotter"
)

var validateCmd = &cobra.Command{
	Use:   "validate [id]",
	Short: "Check whether an identifier has a recognized shape",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !jotter.IsValidID(args[0]) {
			fmt.Printf("invalid: %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("valid: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
