// LogLens - Log Analysis Tool
//
// LogLens is a batch log analysis tool for plain-text log files. It
// computes statistics and detects suspicious patterns worth a closer look.
package main

import (
	"os"

	"github.com/ccollicutt/loglens/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
