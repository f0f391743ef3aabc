package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/f2b/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the f2b SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection runs its own game loop. Saves are kept per user below
the save path.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.f2b/host_key

Examples:
  f2b serve                           # Listen on :23235 with auto-generated key
  f2b serve --ssh :2222               # Listen on port 2222
  f2b serve --host-key ./my_host_key  # Use specific host key
  f2b serve --savepath /var/lib/f2b   # Keep saves there

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from settings, :23235)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from settings)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	srvCfg := tui.SSHServerConfig{
		Address:     settings.Server.Address,
		HostKeyPath: settings.Server.HostKey,
		IdleTimeout: settings.Server.IdleTimeout,
		Runtime:     cfg,
		Settings:    settings,
	}
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(srvCfg, newLogger(os.Stderr, "f2b-ssh"))
	if err != nil {
		return err
	}

	fmt.Printf("Starting f2b SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
