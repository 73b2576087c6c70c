// Package cmd provides the CLI commands for pomo.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomo/internal/adapters/tui"
	"github.com/xvierd/pomo/internal/ports"
	"github.com/xvierd/pomo/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	configPath  string
	profileFlag string
	inlineMode  bool
	autoStart   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "pomo - a work/rest timer with a progress ring",
	Long: `pomo alternates work and rest phases. Press space to start or pause,
and watch the ring fill as the phase runs down.

Run "pomo" with no arguments to open the timer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.pomo/config.toml)")
	rootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "", "Phase lengths: standard (25/5 min) or demo (5/5 s)")
	rootCmd.Flags().BoolVarP(&inlineMode, "inline", "i", false, "Compact inline timer (no fullscreen)")
	rootCmd.Flags().BoolVar(&autoStart, "start", false, "Start the first work phase immediately")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("pomo\nVersion: {{.Version}}\n")
}

// runTimer opens the interactive timer.
func runTimer(cmd *cobra.Command, args []string) error {
	if err := app.resolveProfile(profileFlag); err != nil {
		return err
	}

	history, err := app.historyService()
	if err != nil {
		// The timer still works without a history log.
		app.logger.Warn("history unavailable", "error", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: history disabled: %v\n", err)
		history = nil
	}

	session := services.NewSessionService(app.durations, ports.SystemClock, app.logger)
	app.logger.Info("timer opened", "profile", app.profile, "work", app.durations.Work, "rest", app.durations.Rest)

	ctx, stop := setupSignalHandler()
	defer stop()

	if err := tui.Run(ctx, session, history, app.logger, tui.Options{
		Theme:     &app.config.Theme,
		Inline:    inlineMode,
		AutoStart: autoStart,
	}); err != nil {
		return fmt.Errorf("timer error: %w", err)
	}
	return nil
}
