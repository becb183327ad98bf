// Copyright © 2025 The lpyac authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// completeCmd represents the complete command
var completeCmd = &cobra.Command{
	Use:   "complete PREFIX",
	Short: "Print completions for a prefix",
	Long: `Print the completion candidates matching PREFIX, one per line, as
annotated <kind name> tags. A dotted prefix (math.sq) completes the
attributes of the resolved base.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		api, err := newAPI()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, name := range api.Complete(args[0]) {
			fmt.Println(api.Annotate(name))
		}
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
