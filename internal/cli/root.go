package cli

import (
	"fmt"

	"github.com/andy/pomodoro/internal/app"
	"github.com/andy/pomodoro/internal/config"
	"github.com/andy/pomodoro/internal/tui"
	"github.com/spf13/cobra"
)

var (
	appInstance *app.App
	configPath  string
)

var rootCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "A terminal pomodoro timer",
	Long: `Pomodoro alternates focused sessions with breaks, ringing the terminal
bell at every boundary.

By default, running pomodoro without arguments launches the interactive TUI.
Use "pomodoro run" for a headless countdown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// CloseApp releases the app instance if one was created
func CloseApp() error {
	if appInstance == nil {
		return nil
	}
	err := appInstance.Close()
	appInstance = nil
	return err
}

// ensureApp builds the app on first use so config commands work even when
// the config file is invalid.
func ensureApp() (*app.App, error) {
	if appInstance != nil {
		return appInstance, nil
	}
	a, err := app.New(app.Options{ConfigPath: resolvedConfigPath()})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}
	appInstance = a
	return a, nil
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

func launchTUI(cmd *cobra.Command, args []string) error {
	a, err := ensureApp()
	if err != nil {
		return err
	}
	return tui.Run(a)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/pomodoro/config.yaml)")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}
