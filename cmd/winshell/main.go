// Package main is the winshell entry point.
package main

import "github.com/bnema/winshell/internal/cli/cmd"

func main() {
	cmd.Execute()
}
