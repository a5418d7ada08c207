// Package main is the entry point for the combat tracker CLI
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/combat-tracker/internal/errors"
)

func main() {
	if err := newRootCmd(options{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetMessage(err))
		os.Exit(1)
	}
}
