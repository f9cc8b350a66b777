// Command housing builds the Calgary community housing dataset and reports on it.
package main

import (
	"fmt"
	"os"
)

func main() {
	if e := newApp(os.Stdin, os.Stdout).rootCmd().Execute(); e != nil {
		_, _ = fmt.Fprintf(os.Stderr, "housing: %v\n", e)
		os.Exit(exitCode(e))
	}
}
