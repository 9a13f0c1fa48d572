// Copyright © 2026 The eolint authors

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eolint/eolint/lint"
	"github.com/spf13/cobra"
)

var (
	checkJSON       bool
	checkChecks     string
	checkListAll    bool
	checkExcludes   []string
	checkShowSource bool
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [files...]",
	Short: "Check Python source files for Elegant Objects violations",
	Long: `Check Python source files for Elegant Objects violations.

Each rule examines the parsed syntax tree independently and reports
positioned diagnostics. Findings are printed one per line in compiler
format; a clean file gets a per-file confirmation line.

With no files, reads from stdin.

Exit codes:
  0  No violations found
  1  One or more violations were reported
  2  Bad invocation (invalid flags, unreadable or unparseable files)

Available rules (use --checks to select specific ones):
` + lint.RuleDoc() + `
Examples:
  eolint check file.py                          # Check a single file
  eolint check src/...                          # Check every .py file under src/
  eolint check --json file.py                   # Output diagnostics as JSON
  eolint check --checks=naming,nonull file.py   # Run only specific rules
  eolint check --show-source file.py            # Annotated source snippets
  eolint check --exclude='*_test.py' src/...    # Exclude files by pattern
  cat file.py | eolint check                    # Check from stdin`,
	Run: func(cmd *cobra.Command, args []string) {
		if checkListAll {
			for _, name := range lint.RuleNames() {
				fmt.Println(name)
			}
			return
		}
		linter, err := newLinter()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		code := runCheck(linter, args, os.Stdout, os.Stderr)
		if code != 0 {
			os.Exit(code)
		}
	},
}

// newLinter builds the linter from the discovered rule tables and the
// --checks selection.
func newLinter() (*lint.Linter, error) {
	cfg := lint.DefaultConfig()
	if cfgFile != "" {
		loaded, err := lint.LoadConfig(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	rules := lint.DefaultRules()
	if checkChecks != "" {
		selected := make(map[string]bool)
		for _, name := range strings.Split(checkChecks, ",") {
			selected[strings.TrimSpace(name)] = true
		}
		var filtered []*lint.Rule
		for _, r := range rules {
			if selected[r.Name] {
				filtered = append(filtered, r)
				delete(selected, r.Name)
			}
		}
		for name := range selected {
			return nil, fmt.Errorf("eolint check: unknown rule: %s", name)
		}
		rules = filtered
	}
	return &lint.Linter{Rules: rules, Cfg: cfg}, nil
}

// runCheck lints every file (or stdin when args is empty) and writes
// results to out/errOut, returning the process exit code.
func runCheck(linter *lint.Linter, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		src, err := readStdin()
		if err != nil {
			fmt.Fprintf(errOut, "reading stdin: %v\n", err)
			return 2
		}
		diags, err := linter.LintFile(src, "<stdin>")
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
		return report(map[string][]lint.Diagnostic{"<stdin>": diags}, []string{"<stdin>"}, out, errOut)
	}

	paths, err := expandArgs(args, checkExcludes)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	byFile := make(map[string][]lint.Diagnostic)
	failed := false
	for _, path := range paths {
		src, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified files
		if err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", path, err)
			return 2
		}
		diags, err := linter.LintFile(src, path)
		if err != nil {
			// A file that does not parse is reported without aborting
			// the rest of the batch.
			fmt.Fprintln(errOut, err)
			failed = true
			continue
		}
		byFile[path] = diags
	}
	code := report(byFile, paths, out, errOut)
	if failed {
		return 2
	}
	return code
}

// report prints diagnostics per file in argument order and returns the
// exit code.
func report(byFile map[string][]lint.Diagnostic, order []string, out, errOut io.Writer) int {
	var all []lint.Diagnostic
	for _, path := range order {
		diags, ok := byFile[path]
		if !ok {
			continue // did not parse, already reported
		}
		if len(diags) == 0 {
			if !checkJSON {
				fmt.Fprintf(out, "%s: no violations found\n", path)
			}
			continue
		}
		all = append(all, diags...)
		if checkJSON {
			continue
		}
		if checkShowSource {
			renderDiagnostics(out, diags)
		} else {
			lint.FormatText(out, diags)
		}
	}
	if checkJSON {
		if err := lint.FormatJSON(out, all); err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
	} else if len(all) > 0 {
		fmt.Fprintf(out, "\nTotal violations found: %d\n", len(all))
	}
	if len(all) > 0 {
		return 1
	}
	return 0
}

func readStdin() ([]byte, error) {
	return io.ReadAll(os.Stdin)
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output diagnostics as JSON.")
	checkCmd.Flags().StringVar(&checkChecks, "checks", "",
		"Comma-separated list of rules to run (default: all).")
	checkCmd.Flags().BoolVar(&checkListAll, "list", false,
		"List available rules and exit.")
	checkCmd.Flags().StringArrayVar(&checkExcludes, "exclude", nil,
		"Glob pattern for files to exclude (may be repeated).")
	checkCmd.Flags().BoolVar(&checkShowSource, "show-source", false,
		"Render annotated source snippets for each violation.")
}
