package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mattsre/idealaunch/cliout"
	"github.com/mattsre/idealaunch/config"
	"github.com/mattsre/idealaunch/launcher"
	"github.com/mattsre/idealaunch/logutil"
	"github.com/mattsre/idealaunch/resolver"
	"github.com/mattsre/idealaunch/security"
)

func newOpenCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "open [path]",
		Short: "Open a file or directory in the IDE",
		Long: `Open classifies the target and starts the IDE accordingly: a file opens
with its directory as working directory, a directory with an .idea project
opens as a project, a pom.xml triggers a Maven import, a legacy *.ipr file
opens directly, and anything else starts the IDE without a project.

With no argument, paths are read from stdin when piped, otherwise the
current directory is used. When no IDE installation exists, open does
nothing and exits successfully.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(flags, args)
		},
	}
}

func runOpen(flags *rootFlags, args []string) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	binary, found := resolver.Resolve(cfg)
	if !found {
		// Documented no-op: without an installation there is nothing to
		// launch, and that is not an error for open mode.
		logutil.Debug("no IDE installation found, nothing to do")
		return nil
	}

	targets, err := gatherTargets(args)
	if err != nil {
		return err
	}

	starter := launcher.ExecStarter{}
	for _, target := range targets {
		if err := security.ValidatePath(target); err != nil {
			cliout.Warning("skipping %s: %v", target, err)
			continue
		}
		if err := launcher.Open(binary, target, starter); err != nil {
			return err
		}
	}
	return nil
}

// gatherTargets resolves what to open: the single argument if present,
// newline-separated paths from stdin when piped (so directory listings pipe
// straight in), or the current directory.
func gatherTargets(args []string) ([]string, error) {
	if len(args) == 1 {
		return []string{args[0]}, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		var targets []string
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				targets = append(targets, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		if len(targets) > 0 {
			return targets, nil
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return []string{cwd}, nil
}
