package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avolabs/avoterm/internal/brand"
	"github.com/avolabs/avoterm/internal/config"
	"github.com/avolabs/avoterm/internal/logging"
	"github.com/avolabs/avoterm/internal/payment"
	"github.com/avolabs/avoterm/internal/terminal"
	"github.com/avolabs/avoterm/internal/tui"
)

var (
	// Global flags
	verbose    bool
	brandName  string
	configPath string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	theme  *brand.Brand
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:     "avoterm",
	Version: config.Version,
	Short:   "Themed AI agent dashboard for the terminal",
	Long: `avoterm is a terminal dashboard for a Solana AI agent:
- An AI terminal answering a fixed set of commands
- Upcoming tool previews
- DEX payment verification for token addresses

Run without a subcommand to open the dashboard.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			config.SetConfigFile(configPath)
		}

		// The config commands must work on a file holding a bad value,
		// otherwise that value could never be repaired.
		if inConfigTree(cmd) {
			if err := config.Read(); err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			var err error
			logger, err = logging.New("info", "", verbose)
			return err
		}

		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		name := cfg.Brand
		if brandName != "" {
			name = brandName
		}
		theme, err = brand.Load(name)
		if err != nil {
			return err
		}

		// The dashboard owns the screen, so it logs to a file.
		logFile := cfg.LogFile
		if (cmd == cmd.Root() || verifyInteractive) && logFile == "" {
			logFile = logging.DefaultFile()
		}
		logger, err = logging.New(cfg.LogLevel, logFile, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Starting dashboard", zap.String("brand", theme.Name))
		return tui.RunRoot(tui.Options{
			Brand:          theme,
			Checker:        newChecker(),
			Delays:         delays(),
			StatusInterval: cfg.StatusInterval,
			Logger:         logger,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&brandName, "brand", "", "Brand to display (see 'avoterm brands')")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.avoterm.yaml)")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(brandsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(updateCmd)
}

func inConfigTree(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

func newChecker() *payment.Checker {
	return payment.NewChecker(
		payment.WithBaseURL(cfg.APIBaseURL),
		payment.WithChain(cfg.Chain),
		payment.WithClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		payment.WithLogger(logger),
	)
}

func delays() terminal.Delays {
	return terminal.Delays{Line: cfg.TypingDelay, Fallback: cfg.FallbackDelay}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}
