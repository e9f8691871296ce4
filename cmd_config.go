package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/avolabs/avoterm/internal/brand"
	"github.com/avolabs/avoterm/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, key := range config.Keys() {
			fmt.Fprintf(out, "%-16s %s\n", key, config.GetString(key))
		}
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Persist a setting to the config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := strings.ToLower(args[0])
		if !config.IsKey(key) {
			return fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(config.Keys(), ", "))
		}
		if err := validateSetting(key, args[1]); err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		if err := config.SaveConfig(key, args[1]); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		path, _ := config.Path()
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", key, path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// validateSetting rejects values that would stop the next load.
func validateSetting(key, value string) error {
	switch key {
	case "brand":
		_, err := brand.Load(value)
		return err
	case "typing_delay", "fallback_delay", "status_interval", "http_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		if d < 0 {
			return fmt.Errorf("duration must not be negative")
		}
	case "log_level":
		var lvl zapcore.Level
		return lvl.Set(value)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}
