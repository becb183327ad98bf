// Copyright © 2025 The lpyac authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	scopeFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lpyac",
	Short: "lpyac — lispython autocompletion and introspection",
	Long: `lpyac resolves partially typed lispython symbols to completion
candidates and renders callable signatures and documentation in lispy
form. Hyphenated surface symbols (my-func) are evaluated against the
host runtime's underscore identifiers (my_func).

Getting started:
  lpyac repl                     Explore a namespace interactively
  lpyac complete prin            Print completions for a prefix
  lpyac complete print.__c       Complete attributes of a resolved base
  lpyac doc print                Show one-line documentation
  lpyac doc --full print         Show full documentation
  lpyac lsp                      Start a language server over stdio

By default the commands run against a bundled demonstration namespace.
Use --scope to load a namespace from a JSON file instead: top-level
keys become bindings, nested objects become nested scopes.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lpyac.yaml)")
	rootCmd.PersistentFlags().StringVar(&scopeFile, "scope", "", "JSON file defining the namespace to complete against")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".lpyac" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".lpyac")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
	if scopeFile == "" {
		scopeFile = viper.GetString("scope")
	}
}
