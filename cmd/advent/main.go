// Command advent solves the daily puzzles, runs the monkey simulator and
// checks known answers.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/advent/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if !cli.Reported(err) {
			fmt.Fprintln(os.Stderr, "advent:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
