package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avolabs/avoterm/internal/updater"
)

var updateCheckOnly bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update avoterm to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		logger.Debug("Checking for updates",
			zap.String("repo", cfg.UpdateRepo),
			zap.String("asset", updater.AssetName()))

		info, err := updater.CheckForUpdates(cmd.Context(), cfg.UpdateRepo)
		if err != nil {
			return err
		}

		if !info.IsUpdateAvailable {
			fmt.Fprintf(out, "avoterm %s is up to date.\n", info.CurrentVersion)
			return nil
		}

		fmt.Fprintf(out, "Update available: %s -> %s\n%s\n", info.CurrentVersion, info.LatestVersion, info.ReleaseURL)
		if updateCheckOnly {
			return nil
		}

		fmt.Fprintln(out, "Downloading and installing update...")
		if err := updater.PerformUpdate(cmd.Context(), cfg.UpdateRepo); err != nil {
			return err
		}
		fmt.Fprintf(out, "Updated to %s. Restart avoterm to use it.\n", info.LatestVersion)
		return nil
	},
}

func init() {
	updateCmd.Flags().BoolVar(&updateCheckOnly, "check", false, "Only report whether an update exists")
}
