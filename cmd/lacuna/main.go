// Command lacuna parses a literate deck-description file into a JSON
// document tree plus a diagnostic stream, per spec.md §6.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errIssuesFound) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
