// idealaunch resolves a file or directory to a launch decision, starts the
// newest installed IntelliJ IDEA against it, and manages the Explorer
// context-menu integration that re-invokes it.
package main

import (
	"os"

	"github.com/mattsre/idealaunch/cliout"
)

// Set via ldflags at build time.
var (
	buildVersion = "0.0.0-dev"
	buildDate    = "unknown"
	gitCommit    = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		cliout.Error("%v", err)
		os.Exit(1)
	}
}
