package main

import (
	"fmt"
	"os"

	"github.com/danielmiessler/tw2s/internal/cli"
)

var version = "dev"

func main() {
	err := cli.Cli(version)
	if err != nil && !cli.Reported(err) {
		fmt.Fprintf(os.Stderr, "tw2s: %s\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
