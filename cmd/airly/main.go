// Package main provides the entrypoint for the airly command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/bartOssh/airly-go/internal/cli"
)

func main() {
	if err := cli.Run(os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
