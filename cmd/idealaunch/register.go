package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattsre/idealaunch/cliout"
	"github.com/mattsre/idealaunch/config"
	"github.com/mattsre/idealaunch/logutil"
	"github.com/mattsre/idealaunch/notify"
	"github.com/mattsre/idealaunch/regstore"
	"github.com/mattsre/idealaunch/resolver"
	"github.com/mattsre/idealaunch/security"
	"github.com/mattsre/idealaunch/shellmenu"
)

func newInstallCommand(flags *rootFlags) *cobra.Command {
	var notifyFlag bool
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Add the Explorer context-menu entry",
		Long: `Install registers an "Open with IntelliJ IDEA" action for directories and
directory backgrounds in Explorer. It requires an elevated (administrator)
session and an existing IDE installation. Running it again overwrites the
records in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := runRegistration(flags, true); err != nil {
				if errors.Is(err, shellmenu.ErrNoBinary) {
					cliout.Hint("No IDE installation was found.",
						`Run "idealaunch download" to get one, then retry.`)
				}
				return err
			}
			cliout.Success("Explorer context menu installed")
			if notifyFlag {
				sendNotification("Explorer context menu installed")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&notifyFlag, "notify", false, "Post a desktop notification on success")
	return cmd
}

func newUninstallCommand(flags *rootFlags) *cobra.Command {
	var notifyFlag bool
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the Explorer context-menu entry",
		Long: `Uninstall removes the context-menu records created by install. It requires
an elevated (administrator) session. Removing records that do not exist is
a no-op.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			existed, err := runRegistration(flags, false)
			if err != nil {
				return err
			}
			if !existed {
				cliout.Info("No context-menu records were present")
				return nil
			}
			cliout.Success("Explorer context menu removed")
			if notifyFlag {
				sendNotification("Explorer context menu removed")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&notifyFlag, "notify", false, "Post a desktop notification on success")
	return cmd
}

// runRegistration wires config, resolver, privilege probe, and the live
// store into the shellmenu reconciler. For uninstall the boolean reports
// whether any records were present beforehand.
func runRegistration(flags *rootFlags, install bool) (bool, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return false, err
	}

	store, err := regstore.Open()
	if err != nil {
		return false, err
	}

	selfExe, err := os.Executable()
	if err != nil {
		return false, err
	}

	binary, _ := resolver.Resolve(cfg)
	opts := shellmenu.Options{
		Label:      cfg.MenuLabel,
		BinaryPath: binary,
		SelfExe:    selfExe,
		Elevated:   security.IsElevated(),
	}

	if install {
		return true, shellmenu.Install(store, opts)
	}

	existed, err := shellmenu.Installed(store)
	if err != nil {
		return false, err
	}
	return existed, shellmenu.Uninstall(store, opts)
}

// sendNotification posts a desktop notification; failures are warnings only.
func sendNotification(message string) {
	n, err := notify.New(notify.DefaultConfig())
	if err != nil {
		logutil.Warn("notifications unavailable", "error", err)
		return
	}
	defer func() { _ = n.Close() }()

	if err := n.Send(context.Background(), notify.Notification{
		Title:   "idealaunch",
		Message: message,
	}); err != nil {
		logutil.Warn("failed to send notification", "error", err)
	}
}
