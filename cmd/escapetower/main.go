// Package main provides the escapetower binary entry point.
// Escapetower registers tower components and lets the user sort and search
// them interactively, reporting comparison counts and timings.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/escapetower/config"
	"github.com/c360studio/escapetower/prompt"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "escapetower"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the command-line flags.
type options struct {
	configPath  string
	recordsPath string
	logLevel    string
	metrics     bool
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "escapetower",
		Short: "Escape tower component organizer",
		Long: `Escapetower registers up to 20 tower components and organizes them
interactively.

It provides:
- Bubble sort by name, insertion sort by type, selection sort by priority
- Comparison counts and timings for every sort
- Binary search by name, available right after a name sort`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, opts)
			if errors.Is(err, prompt.ErrEndOfInput) {
				// Closed input ends the session without a farewell.
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVarP(&opts.recordsPath, "records", "r", "", "Load components from a YAML file instead of prompting")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Print session metrics to stderr on exit")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	// Config command
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default user config if none exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.NewLoader(newLogger("info")).EnsureUserConfig()
		},
	})
	cmd.AddCommand(configCmd)

	return cmd
}

// newLogger builds the stderr text logger for a level name.
func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
