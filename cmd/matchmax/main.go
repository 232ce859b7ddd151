package main

import (
	"os"

	"github.com/katalvlaran/matchmax/internal/cli"
)

// Build-time values injected via -ldflags "-X main.version=... ...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
