// Copyright © 2026 The eolint authors

package main

import "github.com/eolint/eolint/cmd"

func main() {
	cmd.Execute()
}
