// iso3166 is a CLI tool that looks up ISO 3166-1 countries by name or code.
package main

import (
	"github.com/hightemp/countryiso3166/internal/cli"
)

// Build information (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildTime = buildTime
	cli.Execute()
}
