// Copyright © 2025 The lpyac authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lispython/lpyac/inspect"
)

var docFull bool

// docCmd represents the doc command
var docCmd = &cobra.Command{
	Use:   "doc NAME",
	Short: "Show documentation for a name",
	Long: `Render the documentation for NAME: the signature line followed by
the first docstring line. With --full the remaining docstring lines
are included.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		api, err := newAPI()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		docs := api.Docs(args[0])
		if docFull {
			docs = api.FullDocs(args[0])
		}
		if docs == "" {
			fmt.Fprintf(os.Stderr, "no documentation for %s\n", args[0])
			os.Exit(1)
		}
		if err := inspect.RenderDoc(os.Stdout, docs); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(docCmd)
	docCmd.Flags().BoolVar(&docFull, "full", false, "include the full docstring body")
}
