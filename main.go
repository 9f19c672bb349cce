package main

import (
	"os"

	"github.com/coordination-oru/demolauncher/internal/cli"
	_ "github.com/coordination-oru/demolauncher/internal/demos"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		os.Exit(1)
	}
}
