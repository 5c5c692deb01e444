package main

import (
	"github.com/spf13/cobra"

	"github.com/mattsre/idealaunch/browser"
	"github.com/mattsre/idealaunch/cliout"
	"github.com/mattsre/idealaunch/config"
)

func newDownloadCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "download",
		Short: "Open the IDE download page in the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			if err := browser.OpenURL(cfg.DownloadURL); err != nil {
				return err
			}
			cliout.Info("Opened %s", cfg.DownloadURL)
			return nil
		},
	}
}
