// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	configCmd "github.com/Work-Fort/Ingot/cmd/config"
	"github.com/Work-Fort/Ingot/cmd/info"
	"github.com/Work-Fort/Ingot/cmd/install"
	"github.com/Work-Fort/Ingot/cmd/pack"
	"github.com/Work-Fort/Ingot/cmd/version"
	"github.com/Work-Fort/Ingot/pkg/config"
)

var (
	// Version is set at build time via ldflags
	// -ldflags "-X github.com/Work-Fort/Ingot/cmd.Version=x.y.z"
	Version string

	logLevel string
	useTUI   bool
)

var rootCmd = &cobra.Command{
	Use:   "ingot",
	Short: "Minimal installer wizard",
	Long: `Ingot - minimal installer wizard

Ingot carries an application executable and installs it into a folder of
your choice. It walks through three steps: choose a directory, copy the
file, and report the result. Runs as a terminal UI, a single confirmation
prompt, or headless for scripts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitDirs(); err != nil {
			return err
		}

		if err := config.LoadConfig(); err != nil {
			return err
		}

		// Flags, ENV and config files are all resolved through viper
		useTUI = config.GetUseTUI()
		logLevel = config.GetLogLevel()

		return setupLogging(logLevel)
	},
}

// setupLogging sends the default logger to the debug log as JSON
func setupLogging(level string) error {
	if level == "disabled" {
		log.SetOutput(io.Discard)
		return nil
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.DebugLevel
	}

	logFile := filepath.Join(config.GlobalPaths.DataDir, config.DebugLogFile)
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetDefault(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02T15:04:05.000Z07:00",
		Level:           parsed,
		ReportCaller:    true,
		Formatter:       log.JSONFormatter,
	}))

	return nil
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		theme := config.CurrentTheme
		fmt.Fprintf(os.Stderr, "%s %s\n", theme.ErrorStyle().Render("Error:"), err.Error())
		os.Exit(1)
	}
}

func init() {
	// Redirected to the debug log in PersistentPreRunE
	log.SetReportTimestamp(false)
	log.SetLevel(log.InfoLevel)

	config.InitViper()

	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "debug", "Log level: disabled, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&useTUI, "use-tui", true, "Enable terminal UI mode")

	if err := config.BindFlags(rootCmd.PersistentFlags()); err != nil {
		log.Warnf("%v", err)
	}

	rootCmd.AddCommand(install.NewInstallCmd())
	rootCmd.AddCommand(info.NewInfoCmd())
	rootCmd.AddCommand(pack.NewPackCmd())
	rootCmd.AddCommand(configCmd.NewConfigCmd())
	rootCmd.AddCommand(version.NewVersionCmd(Version))

	rootCmd.SetHelpFunc(styledHelpFunc)
	rootCmd.SetUsageFunc(styledUsageFunc)
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true // printed by Execute

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(newCompletionCmd(rootCmd))
}

// GetRootCommand returns the root command for external use (e.g., man page generation)
func GetRootCommand() *cobra.Command {
	return rootCmd
}
