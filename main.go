// Package main is the entry point for the DSCP to ToS conversion table generator.
package main

import (
	"fmt"
	"os"

	"firestige.xyz/dscptos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
