// Copyright © 2025 The lpyac authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lispython/lpyac/repl"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Explore a namespace interactively",
	Long: `Start an interactive session over the configured namespace. Tab
completes the symbol at the cursor; entering a name prints its
annotation and one-line documentation.`,
	Run: func(cmd *cobra.Command, args []string) {
		api, err := newAPI()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		repl.Run("lpy> ", api)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
