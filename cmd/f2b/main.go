// f2b runs the game loop in the terminal.
//
// Usage:
//
//	f2b [flags]          - Play in the local terminal
//	f2b serve            - Start SSH server for remote play
//	f2b slots            - Browse saved games
//	f2b levels           - List the level aliases
//
// Global flags:
//
//	--config <path>  - Settings file (default: ~/.f2b/config.yaml)
//	--debug <mask>   - Nonzero enables debug logging
package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/f2b/internal/config"
	"github.com/vovakirdan/f2b/internal/core"
	"github.com/vovakirdan/f2b/internal/platform/tui"
)

var (
	// Global flags
	flagConfig string
	flagDebug  int
	flagLog    string

	runOpts runOptions
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "f2b",
	Short: "f2b - run the game loop in your terminal",
	Long: `f2b boots the game, plays the intro sequence and hands over to the
simulation. Settings come from the config file; flags override them.

Controls:
  Arrows/WASD   - Move (shift or r to run)
  Space/Enter   - Action, skip one clip
  Esc           - Menu, skip the whole intro
  I / J / U     - Inventory, jump, use
  Ctrl+S        - Screenshot
  Ctrl+C        - Quit

Examples:
  f2b --datapath ./DATA --language FR
  f2b --level 4b --subtitles
  f2b --init-state game --debug 1
  f2b serve --ssh :2222
  f2b slots`,
	Args: cobra.NoArgs,
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().IntVar(&flagDebug, "debug", 0, "Debug mask (nonzero enables debug logging)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Log file while the game runs (default: <savepath>/f2b.log)")
	runOpts.bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(levelsCmd)
}

// loadRuntime loads the settings and applies the command line on top.
// Errors here are usage errors.
func loadRuntime(cmd *cobra.Command) (config.Settings, core.RuntimeConfig, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return settings, core.RuntimeConfig{}, err
	}
	cfg, err := runOpts.runtime(cmd.Flags(), &settings)
	if err != nil {
		return settings, cfg, err
	}
	cfg.Debug = flagDebug != 0
	return settings, cfg, nil
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug != 0 {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func runRoot(cmd *cobra.Command, _ []string) error {
	settings, cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// The terminal belongs to the game; logs go to a file.
	logPath := flagLog
	if logPath == "" {
		logPath = filepath.Join(cfg.SavePath, "f2b.log")
	}
	var out io.Writer = io.Discard
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err == nil {
		if f, openErr := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); openErr == nil {
			defer f.Close()
			out = f
		}
	}
	logger := newLogger(out, "f2b")

	return tui.Run(cfg, settings, logger)
}
