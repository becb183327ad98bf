// Copyright © 2025 The lpyac authors

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lispython/lpyac/lsp"
)

// lspCmd represents the lsp command
var lspCmd = &cobra.Command{
	Use:   "lsp [flags]",
	Short: "Start the lispython Language Server Protocol server",
	Long: `Start an LSP server offering completion and hover documentation for
lispython source files, backed by the configured namespace.

Transport modes:
  --stdio      Use stdin/stdout for LSP communication (default)
  --port N     Listen for an LSP client on TCP port N

Editor configuration (VS Code):
  Install a generic LSP client extension and configure it to run
  "lpyac lsp --stdio" for .lpy files.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		api, err := newAPI()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		srv := lsp.New(api)

		if !lspStdio && lspPort > 0 {
			addr := fmt.Sprintf("localhost:%d", lspPort)
			log.Printf("lpyac LSP server listening on %s", addr)
			if err := srv.RunTCP(addr); err != nil {
				fmt.Fprintf(os.Stderr, "lsp server error: %v\n", err)
				os.Exit(1)
			}
			return
		}
		if err := srv.RunStdio(); err != nil {
			fmt.Fprintf(os.Stderr, "lsp server error: %v\n", err)
			os.Exit(1)
		}
	},
}

var (
	lspStdio bool
	lspPort  int
)

func init() {
	rootCmd.AddCommand(lspCmd)
	lspCmd.Flags().BoolVar(&lspStdio, "stdio", false,
		"Use stdin/stdout for LSP communication (default behavior)")
	lspCmd.Flags().IntVar(&lspPort, "port", 0,
		"TCP port for LSP server (use instead of --stdio)")
}
