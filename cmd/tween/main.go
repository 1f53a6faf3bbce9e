package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tween-tui/tween/cmd/commands"
	"github.com/tween-tui/tween/internal/cli"
	"github.com/tween-tui/tween/internal/logger"
	"github.com/tween-tui/tween/pkg/styles"
	"github.com/tween-tui/tween/pkg/tui"
)

// version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "tween [stylesheet]",
	Short: "Terminal-based editor for CSS transitions",
	Long: `Tween is a terminal-based editor for the CSS transition shorthand.
It opens a stylesheet, lists the rules carrying transition declarations and
lets you edit each layer either field by field or as free text, with live
previews and undo.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := styles.ReadSettings()
		if err != nil {
			return err
		}

		path := settings.UI.Stylesheet
		if len(args) == 1 {
			path = args[0]
		}
		if err := cli.ValidateStylesheetPath(path); err != nil {
			return err
		}

		store, err := styles.LoadStore(path)
		if err != nil {
			return err
		}

		// The TUI owns the terminal, so debug logs go to a file and only
		// when asked for.
		log := logger.Nop()
		if os.Getenv("TWEEN_DEBUG") != "" {
			logPath := settings.Log.File
			if logPath == "" {
				logPath = filepath.Join(styles.TweenDir, styles.DebugLogFile)
			}
			fileLog, file, err := logger.NewFileLogger(logPath, settings.Log.Level)
			if err != nil {
				return fmt.Errorf("failed to open debug log: %w", err)
			}
			defer file.Close()
			log = fileLog
			log.WithFields(map[string]any{"stylesheet": path, "version": version}).Info("session started")
		}

		app := tui.NewApp(store, settings, log)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new tween project",
	Long:  `Creates the .tween folder with default settings in the current directory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := styles.InitProjectStructure(); err != nil {
			return fmt.Errorf("failed to initialize project: %w", err)
		}
		fmt.Println("✓ Created .tween folder with default settings")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tween version %s\n", version)
	},
}

func main() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewFmtCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewSetCommand())
	rootCmd.AddCommand(commands.NewRmCommand())

	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
