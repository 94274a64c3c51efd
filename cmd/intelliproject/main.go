// Package main is the entry point for the IntelliProject CLI.
package main

import (
	"os"

	"github.com/f3rmion/intelliproject/cmd/intelliproject/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
