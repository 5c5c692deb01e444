package main

import (
	"github.com/spf13/cobra"

	"github.com/mattsre/idealaunch/cliout"
	"github.com/mattsre/idealaunch/logutil"
	"github.com/mattsre/idealaunch/version"
)

// rootFlags holds the global flags shared by every subcommand.
type rootFlags struct {
	debug      bool
	noColor    bool
	configPath string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	info := version.New("idealaunch")
	info.Version = buildVersion
	info.BuildDate = buildDate
	info.GitCommit = gitCommit

	root := &cobra.Command{
		Use:   "idealaunch [path]",
		Short: "Open files and directories in the newest installed IntelliJ IDEA",
		Long: `idealaunch locates the newest IntelliJ IDEA installation and opens the
given file or directory in it, picking the working directory and arguments
from what the target contains (.idea project, pom.xml, legacy *.ipr file).

It can also register itself as an Explorer context-menu entry so directories
gain an "Open with IntelliJ IDEA" action.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logutil.SetupLogger(flags.debug, false)
			// The color toggle is package state; set it both ways so the
			// flag stays authoritative across repeated invocations.
			if flags.noColor {
				cliout.NoColor()
			} else {
				cliout.ForceColor()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation defaults to open mode.
			return runOpen(flags, args)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&flags.debug, "debug", false, "Enable verbose diagnostic output")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	pf.StringVar(&flags.configPath, "config", "", "Path to config file")

	root.AddCommand(newOpenCommand(flags))
	root.AddCommand(newInstallCommand(flags))
	root.AddCommand(newUninstallCommand(flags))
	root.AddCommand(newDownloadCommand(flags))
	root.AddCommand(version.NewCommand(info))

	return root
}
