// Package main is the entry point for the payroll reporting CLI.
package main

import (
	"os"

	"payroll-reports/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
