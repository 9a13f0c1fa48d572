// Copyright © 2026 The eolint authors

package cmd

import (
	"fmt"
	"strings"

	"github.com/eolint/eolint/lint"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [name...]",
	Short: "Describe the rule catalog",
	Long: `Describe the rule catalog.

With no arguments, prints every rule with its codes and documentation.
With rule names as arguments, prints only those rules.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rules := lint.DefaultRules()
		if len(args) > 0 {
			byName := make(map[string]*lint.Rule, len(rules))
			for _, r := range rules {
				byName[r.Name] = r
			}
			rules = rules[:0]
			for _, name := range args {
				r, ok := byName[name]
				if !ok {
					return fmt.Errorf("unknown rule: %s", name)
				}
				rules = append(rules, r)
			}
		}
		for i, r := range rules {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%s (%s)\n", r.Name, strings.Join(r.Codes, ", "))
			fmt.Println(indent.String(wordwrap.String(r.Doc, 72), 2))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
