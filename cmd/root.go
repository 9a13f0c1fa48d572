// Copyright © 2026 The eolint authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	colorFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "eolint",
	Short: "eolint — Elegant Objects linter for Python",
	Long: `eolint checks Python source files against the Elegant Objects
discipline: no -er names, no None, no getters/setters, no mutable
objects, no static methods, no reflection, no ORM patterns, no
implementation inheritance.

Getting started:
  eolint check file.py         Check a single file
  eolint check src/...         Check every .py file under src/
  eolint check --show-source   Render annotated source snippets
  eolint rules                 Describe the rule catalog

Each finding carries a stable code (EO001..EO014) and is printed in
compiler format, file:line:col: message, so editors can jump to it.

Rule tables (banned suffixes, allowed exceptions, ORM method names,
and so on) can be overridden with a YAML file passed via --config or
discovered as .eolint.yaml in the working directory.

More information:
  Source code:     https://github.com/eolint/eolint`,
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

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "rule-table file (default is ./.eolint.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored output: "auto", "always", or "never".`)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for .eolint.yaml in the working directory and home.
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".eolint")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		cfgFile = viper.ConfigFileUsed()
	}
}
